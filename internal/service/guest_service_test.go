package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casamento/registry/internal/model"
)

func TestPublicListAnnotatesOwnReservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	guest := env.createUser(t, "convidado", model.RoleConvidado)
	other := env.createUser(t, "outro", model.RoleConvidado)

	list, mine := env.createListWithItem(t, owner, "Lista", "Panela")
	theirs, err := env.lists.AddItem(ctx, owner.ID, list.ID, "Toalha", nil)
	require.NoError(t, err)

	reservation, err := env.reservations.Reserve(ctx, guest.ID, mine.ID)
	require.NoError(t, err)
	_, err = env.reservations.Reserve(ctx, other.ID, theirs.ID)
	require.NoError(t, err)

	got, err := env.guests.PublicList(ctx, guest.ID, list.ShareableLink)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	for _, item := range got.Items {
		switch item.ID {
		case mine.ID:
			require.NotNil(t, item.MyReservationID)
			assert.Equal(t, reservation.ID, *item.MyReservationID)
		case theirs.ID:
			// Someone else's reservation is visible as status only.
			assert.Equal(t, model.GiftStatusReserved, item.Status)
			assert.Nil(t, item.MyReservationID)
		default:
			t.Fatalf("unexpected item %s", item.ID)
		}
	}
}

func TestPublicListUnknownLink(t *testing.T) {
	env := newTestEnv(t)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	_, err := env.guests.PublicList(context.Background(), guest.ID, "nope")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestMyDetailsSkipsDeletedList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	keep, _ := env.createListWithItem(t, owner, "Fica", "Panela")
	gone, _ := env.createListWithItem(t, owner, "Some", "Toalha")

	_, err := env.rsvps.Submit(ctx, guest.ID, keep.ID, model.RsvpStatusConfirmed, nil)
	require.NoError(t, err)
	_, err = env.rsvps.Submit(ctx, guest.ID, gone.ID, model.RsvpStatusConfirmed, nil)
	require.NoError(t, err)

	// Delete the list row directly, leaving the RSVP dangling.
	require.NoError(t, env.db.Delete(&model.WeddingList{}, "id = ?", gone.ID).Error)

	details, err := env.guests.MyDetails(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, details.Events, 1)
	assert.Equal(t, keep.ID, details.Events[0].WeddingList.ID)
	assert.Equal(t, "Fica", details.Events[0].WeddingList.Title)
	assert.Equal(t, keep.ShareableLink, details.Events[0].WeddingList.ShareableLink)
}

func TestMyDetailsEmpty(t *testing.T) {
	env := newTestEnv(t)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	details, err := env.guests.MyDetails(context.Background(), guest.ID)
	require.NoError(t, err)
	assert.Empty(t, details.Events)
	assert.Equal(t, guest.ID, details.UserID)
}
