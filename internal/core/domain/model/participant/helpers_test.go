package participant_test

import (
	"context"
	"testing"

	"floristsim/internal/core/domain/model/participant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNarrator struct{ mock.Mock }

func (m *MockNarrator) Narrate(ctx context.Context, line string) {
	m.Called(ctx, line)
}

type testChain struct {
	gardener   *participant.Gardener
	grower     *participant.Grower
	wholesaler *participant.Wholesaler
	arranger   *participant.FlowerArranger
	delivery   *participant.DeliveryPerson
	florist    *participant.Florist
	chris      *participant.Person
	robin      *participant.Person
}

// newTestChain wires the reference chain: Garett, Gray, Watson, Flora, Dylan, Fred,
// with Chris ordering for Robin.
func newTestChain(t *testing.T, narrator participant.Narrator) testChain {
	t.Helper()

	gardener, err := participant.NewGardener("Garett", narrator)
	require.NoError(t, err)
	grower, err := participant.NewGrower("Gray", gardener, narrator)
	require.NoError(t, err)
	wholesaler, err := participant.NewWholesaler("Watson", grower, narrator)
	require.NoError(t, err)
	arranger, err := participant.NewFlowerArranger("Flora", narrator)
	require.NoError(t, err)
	delivery, err := participant.NewDeliveryPerson("Dylan", narrator)
	require.NoError(t, err)
	florist, err := participant.NewFlorist("Fred", wholesaler, arranger, delivery, narrator)
	require.NoError(t, err)
	chris, err := participant.NewPerson("Chris", narrator)
	require.NoError(t, err)
	robin, err := participant.NewPerson("Robin", narrator)
	require.NoError(t, err)

	return testChain{
		gardener:   gardener,
		grower:     grower,
		wholesaler: wholesaler,
		arranger:   arranger,
		delivery:   delivery,
		florist:    florist,
		chris:      chris,
		robin:      robin,
	}
}

func referenceTranscript(flowerList string) []string {
	return []string{
		"Chris orders flowers to Robin from Florist Fred: " + flowerList,
		"Florist Fred forwards request to Wholesaler Watson.",
		"Wholesaler Watson forwards the request to Grower Gray.",
		"Grower Gray forwards the request to Gardener Garett.",
		"Gardener Garett prepares flowers.",
		"Gardener Garett returns flowers to Grower Gray.",
		"Grower Gray returns flowers to Wholesaler Watson.",
		"Wholesaler Watson returns flowers to Florist Fred.",
		"Florist Fred request flowers arrangement from Flower Arranger Flora.",
		"Flower Arranger Flora arranges flowers.",
		"Flower Arranger Flora returns arranged flowers to Florist Fred.",
		"Florist Fred forwards flowers to Delivery Person Dylan.",
		"Delivery Person Dylan delivers flowers Robin.",
		"Robin accepts the flowers: " + flowerList,
	}
}
