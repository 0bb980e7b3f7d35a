package cmd_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"floristsim/cmd"
	"floristsim/internal/core/application/usecases/commands"
	"floristsim/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReferenceScenarioTestSuite runs orders through the fully wired process and
// checks the narration written to stdout.
type ReferenceScenarioTestSuite struct {
	suite.Suite
	out  *bytes.Buffer
	logs *bytes.Buffer
	root cmd.CompositionRoot
}

func TestReferenceScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceScenarioTestSuite))
}

func (s *ReferenceScenarioTestSuite) SetupTest() {
	s.out = new(bytes.Buffer)
	s.logs = new(bytes.Buffer)

	cfg := cmd.Config{LogLevel: "debug", LogFormat: "json"}
	logger, err := cfg.NewLogger(s.logs)
	s.Require().NoError(err)

	root, err := cmd.NewCompositionRoot(cfg, s.out, logger)
	s.Require().NoError(err)
	s.root = root
}

func (s *ReferenceScenarioTestSuite) runOrder(flowers []string) []string {
	placeOrder, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Chris", "Robin", flowers)
	s.Require().NoError(err)

	handler := s.root.CreatePlaceOrderCommandHandler()
	s.Require().NoError(handler.Handle(s.T().Context(), placeOrder))

	s.Require().True(strings.HasSuffix(s.out.String(), "\n"))
	return strings.Split(strings.TrimSuffix(s.out.String(), "\n"), "\n")
}

func (s *ReferenceScenarioTestSuite) TestReferenceOrder() {
	placeOrder, err := cmd.DefaultReferenceOrder().Command()
	s.Require().NoError(err)

	handler := s.root.CreatePlaceOrderCommandHandler()
	s.Require().NoError(handler.Handle(s.T().Context(), placeOrder))

	s.Equal(
		"Chris orders flowers to Robin from Florist Fred: Roses, Violets, Gladiolus.\n"+
			"Florist Fred forwards request to Wholesaler Watson.\n"+
			"Wholesaler Watson forwards the request to Grower Gray.\n"+
			"Grower Gray forwards the request to Gardener Garett.\n"+
			"Gardener Garett prepares flowers.\n"+
			"Gardener Garett returns flowers to Grower Gray.\n"+
			"Grower Gray returns flowers to Wholesaler Watson.\n"+
			"Wholesaler Watson returns flowers to Florist Fred.\n"+
			"Florist Fred request flowers arrangement from Flower Arranger Flora.\n"+
			"Flower Arranger Flora arranges flowers.\n"+
			"Flower Arranger Flora returns arranged flowers to Florist Fred.\n"+
			"Florist Fred forwards flowers to Delivery Person Dylan.\n"+
			"Delivery Person Dylan delivers flowers Robin.\n"+
			"Robin accepts the flowers: Roses, Violets, Gladiolus.\n",
		s.out.String())
}

func (s *ReferenceScenarioTestSuite) TestSingleFlowerVisitsEveryParticipantOnce() {
	lines := s.runOrder([]string{"Roses"})

	s.Len(lines, 14)
	for _, step := range []string{
		"Grower Gray forwards the request",
		"Gardener Garett prepares flowers.",
		"Wholesaler Watson forwards the request",
		"Flower Arranger Flora arranges flowers.",
		"Delivery Person Dylan delivers flowers",
		"Robin accepts the flowers",
	} {
		var count int
		for _, line := range lines {
			if strings.HasPrefix(line, step) {
				count++
			}
		}
		s.Equal(1, count, step)
	}
	s.Equal("Robin accepts the flowers: Roses.", lines[13])
}

func (s *ReferenceScenarioTestSuite) TestEmptyOrderReachesRecipient() {
	lines := s.runOrder([]string{})

	s.Len(lines, 14)
	s.Equal("Chris orders flowers to Robin from Florist Fred: ", lines[0])
	s.Equal("Robin accepts the flowers: ", lines[13])
}

func (s *ReferenceScenarioTestSuite) TestNarrationIsLoggedAtDebug() {
	s.runOrder([]string{"Roses"})

	s.Contains(s.logs.String(), `"component":"narrator"`)
	s.Contains(s.logs.String(), `"msg":"Order placed"`)
	s.Contains(s.logs.String(), `"msg":"Order delivered"`)
}

func (s *ReferenceScenarioTestSuite) TestNarrationRecordsCarryOrderID() {
	orderID := kernel.NewUUID()
	placeOrder, err := commands.NewPlaceOrderCommand(orderID, "Chris", "Robin", []string{"Roses"})
	s.Require().NoError(err)

	handler := s.root.CreatePlaceOrderCommandHandler()
	s.Require().NoError(handler.Handle(s.T().Context(), placeOrder))

	var narrations int
	for _, raw := range strings.Split(strings.TrimSpace(s.logs.String()), "\n") {
		var record map[string]any
		s.Require().NoError(json.Unmarshal([]byte(raw), &record))
		if record["msg"] != "narration" {
			continue
		}
		narrations++
		s.Equal(orderID.String(), record["order_id"], record["line"])
		s.Equal("narrator", record["component"])
	}
	s.Equal(14, narrations)
}

func (s *ReferenceScenarioTestSuite) TestSupplyChainIsWiredOnce() {
	chain := s.root.SupplyChain()

	s.Same(chain.Wholesaler(), chain.Florist().Wholesaler())
	s.Same(chain.Gardener(), chain.Grower().Gardener())
}

func TestDefaultReferenceOrder(t *testing.T) {
	placeOrder, err := cmd.DefaultReferenceOrder().Command()

	require.NoError(t, err)
	require.NoError(t, placeOrder.Validate())
	assert.Equal(t, "Chris", placeOrder.Orderer())
	assert.Equal(t, "Robin", placeOrder.Recipient())
	assert.Equal(t, []string{"Roses", "Violets", "Gladiolus"}, placeOrder.Flowers())
}
