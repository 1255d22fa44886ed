package repositories_test

import (
	"testing"
	"time"

	"kudos/internal/models"
	"kudos/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func createKudo(t *testing.T, repo repositories.KudoRepository, authorID, recipientID, message, emoji string, createdAt time.Time) *models.Kudo {
	t.Helper()

	kudo := &models.Kudo{
		Message:     message,
		AuthorID:    authorID,
		RecipientID: recipientID,
		Style: models.KudoStyle{
			BackgroundColour: "RED",
			TextColour:       "WHITE",
			Emoji:            emoji,
		},
	}
	kudo.CreatedAt = createdAt
	assert.NoError(t, repo.Create(kudo))
	return kudo
}

// seedFeed creates Ann and Bob plus three kudos with distinct timestamps,
// emojis, and filter-relevant text.
func seedFeed(t *testing.T, userRepo repositories.UserRepository, kudoRepo repositories.KudoRepository) (k1, k2, k3 *models.Kudo) {
	t.Helper()

	ann := createUser(t, userRepo, "ann@example.com", "Ann", "Jordan", "SALES")
	bob := createUser(t, userRepo, "bob@example.com", "Bob", "Smith", "ENGINEERING")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	k1 = createKudo(t, kudoRepo, ann.ID, bob.ID, "Great presentation", "THUMBSUP", base)
	k2 = createKudo(t, kudoRepo, bob.ID, ann.ID, "Nice ANNOUNCEMENT today", "PARTY", base.Add(time.Hour))
	k3 = createKudo(t, kudoRepo, bob.ID, ann.ID, "Good job", "HANDSUP", base.Add(2*time.Hour))
	return k1, k2, k3
}

func kudoIDs(kudos []models.Kudo) []string {
	ids := make([]string, 0, len(kudos))
	for _, k := range kudos {
		ids = append(ids, k.ID)
	}
	return ids
}

func TestGORMKudoRepository_SortByDate(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)
	k1, k2, k3 := seedFeed(t, userRepo, kudoRepo)

	kudos, err := kudoRepo.GetFiltered(models.SortByDate, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{k3.ID, k2.ID, k1.ID}, kudoIDs(kudos))
}

func TestGORMKudoRepository_SortBySender(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)
	k1, _, _ := seedFeed(t, userRepo, kudoRepo)

	kudos, err := kudoRepo.GetFiltered(models.SortBySender, "")
	assert.NoError(t, err)
	assert.Len(t, kudos, 3)

	// Ann's kudo sorts before Bob's two
	assert.Equal(t, k1.ID, kudos[0].ID)
	assert.Equal(t, "Ann", kudos[0].Author.Profile.FirstName)
	assert.Equal(t, "Bob", kudos[1].Author.Profile.FirstName)
	assert.Equal(t, "Bob", kudos[2].Author.Profile.FirstName)
}

func TestGORMKudoRepository_SortByEmoji(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)
	k1, k2, k3 := seedFeed(t, userRepo, kudoRepo)

	kudos, err := kudoRepo.GetFiltered(models.SortByEmoji, "")
	assert.NoError(t, err)
	// Emoji ascending: HANDSUP, PARTY, THUMBSUP
	assert.Equal(t, []string{k3.ID, k2.ID, k1.ID}, kudoIDs(kudos))
}

func TestGORMKudoRepository_Filter(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)
	k1, k2, _ := seedFeed(t, userRepo, kudoRepo)

	// "ann" matches k1 via author first name Ann and k2 via its message,
	// case-insensitively; k3 matches neither
	kudos, err := kudoRepo.GetFiltered(models.SortByDate, "ann")
	assert.NoError(t, err)
	assert.Equal(t, []string{k2.ID, k1.ID}, kudoIDs(kudos))

	// Last names match too
	kudos, err = kudoRepo.GetFiltered(models.SortDefault, "smith")
	assert.NoError(t, err)
	assert.Len(t, kudos, 2)
	for _, k := range kudos {
		assert.Equal(t, "Smith", k.Author.Profile.LastName)
	}

	// An unmatched term yields an empty feed
	kudos, err = kudoRepo.GetFiltered(models.SortDefault, "zzz")
	assert.NoError(t, err)
	assert.Empty(t, kudos)

	// An empty filter means no filtering
	kudos, err = kudoRepo.GetFiltered(models.SortDefault, "")
	assert.NoError(t, err)
	assert.Len(t, kudos, 3)
}

func TestGORMKudoRepository_CreateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)

	ann := createUser(t, userRepo, "ann@example.com", "Ann", "Jordan", "SALES")
	bob := createUser(t, userRepo, "bob@example.com", "Bob", "Smith", "ENGINEERING")

	sent := &models.Kudo{
		Message:     "Thanks for the review!",
		AuthorID:    ann.ID,
		RecipientID: bob.ID,
		Style: models.KudoStyle{
			BackgroundColour: "BLUE",
			TextColour:       "YELLOW",
			Emoji:            "PARTY",
		},
	}
	assert.NoError(t, kudoRepo.Create(sent))
	assert.NotEmpty(t, sent.ID)
	assert.Equal(t, sent.ID, sent.Style.KudoID)

	recent, err := kudoRepo.GetRecent()
	assert.NoError(t, err)
	assert.Len(t, recent, 1)

	got := recent[0]
	assert.Equal(t, "Thanks for the review!", got.Message)
	assert.Equal(t, "BLUE", got.Style.BackgroundColour)
	assert.Equal(t, "YELLOW", got.Style.TextColour)
	assert.Equal(t, "PARTY", got.Style.Emoji)
	assert.Equal(t, ann.ID, got.AuthorID)
	assert.Equal(t, "Ann", got.Author.Profile.FirstName)
}

func TestGORMKudoRepository_GetRecentOrder(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)
	k1, k2, k3 := seedFeed(t, userRepo, kudoRepo)

	recent, err := kudoRepo.GetRecent()
	assert.NoError(t, err)
	assert.Equal(t, []string{k3.ID, k2.ID, k1.ID}, kudoIDs(recent))
}
