package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"toxic-lab/domain"
	"toxic-lab/domain/search"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openBluge(t *testing.T) *bluge.Writer {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return writer
}

func TestVerdictRepository_Store_And_Get(t *testing.T) {
	req := require.New(t)
	repo := NewVerdictRepository(openBadger(t), openBluge(t), slog.Default(), lo.ToPtr(50))

	original := domain.Verdict{
		ID:           uuid.New(),
		Comment:      "cest un connard il est mechant",
		Normalized:   "cest un connard il est mechant",
		Censored:     "cest un ******* il est mechant",
		Label:        domain.LabelToxic,
		Score:        0.8731,
		Lang:         "fr",
		BlockedWords: []string{"connard"},
		At:           time.Now().UTC(),
	}
	req.NoError(repo.Store(original))

	verdicts, cursor, err := repo.GetVerdicts(nil)
	req.NoError(err)
	req.NotNil(cursor)
	req.Len(verdicts, 1)

	fetched := verdicts[0]
	req.Equal(original.ID, fetched.ID)
	req.Equal(original.Comment, fetched.Comment)
	req.Equal(original.Censored, fetched.Censored)
	req.Equal(original.Label, fetched.Label)
	req.Equal(original.Score, fetched.Score)
	req.Equal(original.BlockedWords, fetched.BlockedWords)
	req.True(original.At.Equal(fetched.At))
}

func TestVerdictRepository_Pagination(t *testing.T) {
	req := require.New(t)
	limit := 2
	repo := NewVerdictRepository(openBadger(t), openBluge(t), slog.Default(), &limit)
	now := time.Now().UTC()

	for i := 1; i <= 5; i++ {
		err := repo.Store(domain.Verdict{
			ID:      uuid.New(),
			Comment: fmt.Sprintf("Comment %d", i),
			At:      now.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	// --- PAGE 1 ---
	list1, cursor1, err := repo.GetVerdicts(nil)
	req.NoError(err)
	req.Len(list1, 2)
	req.Equal("Comment 5", list1[0].Comment)
	req.Equal("Comment 4", list1[1].Comment)
	req.Nil(list1[0].BlockedWords)

	// --- PAGE 2 ---
	list2, cursor2, err := repo.GetVerdicts(cursor1)
	req.NoError(err)
	req.Len(list2, 2)
	req.Equal("Comment 3", list2[0].Comment)
	req.Equal("Comment 2", list2[1].Comment)

	// --- PAGE 3 ---
	list3, _, err := repo.GetVerdicts(cursor2)
	req.NoError(err)
	req.Len(list3, 1)
	req.Equal("Comment 1", list3[0].Comment)
}

func TestVerdictRepository_Search(t *testing.T) {
	req := require.New(t)
	repo := NewVerdictRepository(openBadger(t), openBluge(t), slog.Default(), nil)
	ctx := context.Background()
	now := time.Now().UTC()

	comments := []string{
		"connard vas travailler",
		"Cette vidéo est incroyable, merci pour votre travail.",
		"connard de merde",
	}
	for i, c := range comments {
		req.NoError(repo.Store(domain.Verdict{ID: uuid.New(), Comment: c, At: now.Add(time.Duration(i) * time.Second)}))
	}

	// When searching a word present in two comments
	verdicts, total, err := repo.Search(ctx, search.NewSearchQuery("connard"))
	req.NoError(err)

	// Then both verdicts are loaded back from badger
	req.Equal(uint64(2), total)
	req.ElementsMatch(
		[]string{"connard vas travailler", "connard de merde"},
		lo.Map(verdicts, func(v domain.Verdict, _ int) string { return v.Comment }),
	)

	verdicts, total, err = repo.Search(ctx, search.NewSearchQuery("inexistant"))
	req.NoError(err)
	req.Zero(total)
	req.Empty(verdicts)
}

func TestVerdictRepository_Search_Filters(t *testing.T) {
	req := require.New(t)
	repo := NewVerdictRepository(openBadger(t), openBluge(t), slog.Default(), nil)
	ctx := context.Background()
	now := time.Now().UTC()

	stored := []domain.Verdict{
		{ID: uuid.New(), Comment: "tu es nul", Label: domain.LabelToxic, Lang: "fr", At: now},
		{ID: uuid.New(), Comment: "you are nul", Label: domain.LabelToxic, Lang: "en", At: now.Add(time.Second)},
		{ID: uuid.New(), Comment: "pas nul du tout", Label: domain.LabelClean, Lang: "fr", At: now.Add(2 * time.Second)},
	}
	for _, v := range stored {
		req.NoError(repo.Store(v))
	}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Terms only", "nul", []string{"tu es nul", "you are nul", "pas nul du tout"}},
		{"Label filter", "nul --label toxic", []string{"tu es nul", "you are nul"}},
		{"Label and lang", "nul --label toxic --lang fr", []string{"tu es nul"}},
		{"Filter without terms", "--lang fr", []string{"tu es nul", "pas nul du tout"}},
		{"No criterion matches all", "", []string{"tu es nul", "you are nul", "pas nul du tout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts, total, err := repo.Search(ctx, search.NewSearchQuery(tt.input))
			require.NoError(t, err)
			require.Equal(t, uint64(len(tt.expected)), total)
			require.ElementsMatch(t, tt.expected, lo.Map(verdicts, func(v domain.Verdict, _ int) string { return v.Comment }))
		})
	}

	// The limit caps loaded verdicts, not the hit count
	verdicts, total, err := repo.Search(ctx, search.NewSearchQuery("nul --limit 1"))
	req.NoError(err)
	req.Len(verdicts, 1)
	req.Equal(uint64(3), total)
}
