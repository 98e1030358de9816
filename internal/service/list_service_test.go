package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casamento/registry/internal/model"
)

func TestCreateListGeneratesDistinctLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)

	a, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{Title: "Lista A"})
	require.NoError(t, err)
	b, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{Title: "Lista B"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ShareableLink)
	assert.NotEmpty(t, b.ShareableLink)
	assert.NotEqual(t, a.ShareableLink, b.ShareableLink)
	assert.Equal(t, owner.ID, a.OwnerID)
}

func TestUpdateListMergePatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)

	list, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{
		Title:   "Lista Casamento",
		Message: strptr("Bem-vindos"),
	})
	require.NoError(t, err)

	updated, err := env.lists.UpdateList(ctx, owner.ID, list.ID, UpdateListInput{
		Title: strptr("Lista Nova"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Lista Nova", updated.Title)
	require.NotNil(t, updated.Message)
	assert.Equal(t, "Bem-vindos", *updated.Message, "unset fields must stay untouched")
}

func TestUpdateListNotOwnedReportsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	other := env.createUser(t, "outro", model.RoleCasal)

	list, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{Title: "Lista"})
	require.NoError(t, err)

	_, err = env.lists.UpdateList(ctx, other.ID, list.ID, UpdateListInput{Title: strptr("x")})
	assert.ErrorIs(t, err, ErrListNotFound)

	err = env.lists.DeleteList(ctx, other.ID, list.ID)
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestRotateLinkAlwaysIssuesFreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)

	list, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{Title: "Lista"})
	require.NoError(t, err)
	original := list.ShareableLink

	first, err := env.lists.RotateLink(ctx, owner.ID, list.ID)
	require.NoError(t, err)
	second, err := env.lists.RotateLink(ctx, owner.ID, list.ID)
	require.NoError(t, err)

	assert.NotEqual(t, original, first.ShareableLink)
	assert.NotEqual(t, first.ShareableLink, second.ShareableLink)
}

func TestRotateLinkInvalidatesOldLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	list, _ := env.createListWithItem(t, owner, "Lista", "Panela")
	oldLink := list.ShareableLink

	rotated, err := env.lists.RotateLink(ctx, owner.ID, list.ID)
	require.NoError(t, err)

	_, err = env.guests.PublicList(ctx, guest.ID, oldLink)
	assert.ErrorIs(t, err, ErrListNotFound)

	fetched, err := env.guests.PublicList(ctx, guest.ID, rotated.ShareableLink)
	require.NoError(t, err)
	assert.Equal(t, list.ID, fetched.ID)
}

func TestDeleteListCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	list, item := env.createListWithItem(t, owner, "Lista", "Panela")

	_, err := env.reservations.Reserve(ctx, guest.ID, item.ID)
	require.NoError(t, err)
	_, err = env.rsvps.Submit(ctx, guest.ID, list.ID, model.RsvpStatusConfirmed, nil)
	require.NoError(t, err)

	require.NoError(t, env.lists.DeleteList(ctx, owner.ID, list.ID))

	var itemCount, rsvpCount, reservationCount int64
	require.NoError(t, env.db.Model(&model.GiftItem{}).Where("wedding_list_id = ?", list.ID).Count(&itemCount).Error)
	require.NoError(t, env.db.Model(&model.Rsvp{}).Where("wedding_list_id = ?", list.ID).Count(&rsvpCount).Error)
	require.NoError(t, env.db.Model(&model.Reservation{}).Where("gift_item_id = ?", item.ID).Count(&reservationCount).Error)
	assert.Zero(t, itemCount)
	assert.Zero(t, rsvpCount)
	assert.Zero(t, reservationCount)
}

func TestAddItemToUnownedList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	other := env.createUser(t, "outro", model.RoleCasal)

	list, err := env.lists.CreateList(ctx, owner.ID, CreateListInput{Title: "Lista"})
	require.NoError(t, err)

	_, err = env.lists.AddItem(ctx, other.ID, list.ID, "Panela", nil)
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestUpdateItemMergePatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)

	list, item := env.createListWithItem(t, owner, "Lista", "Panela")

	desc := strptr("Inox")
	_, err := env.lists.UpdateItem(ctx, owner.ID, list.ID, item.ID, UpdateItemInput{Description: desc})
	require.NoError(t, err)

	var got model.GiftItem
	require.NoError(t, env.db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, "Panela", got.Name, "name must stay untouched")
	require.NotNil(t, got.Description)
	assert.Equal(t, "Inox", *got.Description)
	assert.Equal(t, model.GiftStatusAvailable, got.Status)
}

func TestOwnerCanMarkItemPurchased(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)

	list, item := env.createListWithItem(t, owner, "Lista", "Panela")

	status := model.GiftStatusPurchased
	updated, err := env.lists.UpdateItem(ctx, owner.ID, list.ID, item.ID, UpdateItemInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.GiftStatusPurchased, updated.Status)

	bogus := model.GiftStatus("gifted")
	_, err = env.lists.UpdateItem(ctx, owner.ID, list.ID, item.ID, UpdateItemInput{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidGiftStatus)
}

func TestDeleteItemRemovesReservations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "casal", model.RoleCasal)
	guest := env.createUser(t, "convidado", model.RoleConvidado)

	list, item := env.createListWithItem(t, owner, "Lista", "Panela")
	_, err := env.reservations.Reserve(ctx, guest.ID, item.ID)
	require.NoError(t, err)

	require.NoError(t, env.lists.DeleteItem(ctx, owner.ID, list.ID, item.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.Reservation{}).Where("gift_item_id = ?", item.ID).Count(&count).Error)
	assert.Zero(t, count)
}
