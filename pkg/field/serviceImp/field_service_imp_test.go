package serviceImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agriai/database"
	"agriai/pkg/apperr"
	"agriai/pkg/events"
	"agriai/pkg/field/repositoryImp"
	"agriai/pkg/field/service"
)

const north = `{"name":"North","latitude":"51.1694","longitude":"71.4491","area":"10","cropType":"wheat"}`

func newService(t *testing.T) (service.FieldService, *events.Recorder) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "fields.db"))
	require.NoError(t, err)
	rec := &events.Recorder{}
	return NewFieldService(repositoryImp.New(db), rec, zap.NewNop()), rec
}

func TestCreateAndList(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "u1", []byte(north))
	require.NoError(t, err)
	assert.Equal(t, "u1", f.UserID)
	assert.NotEmpty(t, f.ID)

	mine, err := svc.ListFields(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.ID, mine[0].ID)
	assert.Equal(t, "51.1694", mine[0].Latitude)
	assert.Equal(t, "71.4491", mine[0].Longitude)

	theirs, err := svc.ListFields(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
	assert.NotNil(t, theirs)

	assert.Equal(t, []string{events.TopicFieldCreated}, rec.Topics())
}

func TestCreate_InvalidWritesNothing(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	_, err := svc.CreateField(ctx, "u1", []byte(`{"name":"North"}`))
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	all, err := svc.ListFields(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, rec.Topics())
}

func TestUpdate_ForeignRecordIsNotFoundBeforeValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "owner", []byte(north))
	require.NoError(t, err)

	_, err = svc.UpdateField(ctx, "intruder", f.ID, []byte(`{"cropType":"rice"}`))
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.UpdateField(ctx, "owner", "no-such-id", []byte(`{"cropType":"rice"}`))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdate_PartialKeepsOwnerAndOtherFields(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "owner", []byte(north))
	require.NoError(t, err)

	got, err := svc.UpdateField(ctx, "owner", f.ID, []byte(`{"area":"12.5","userId":"someone-else","id":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, "owner", got.UserID)
	assert.Equal(t, "12.5", got.Area)
	assert.Equal(t, "North", got.Name)

	stored, err := svc.ListFields(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "12.5", stored[0].Area)

	assert.Equal(t, []string{events.TopicFieldCreated, events.TopicFieldUpdated}, rec.Topics())
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "owner", []byte(north))
	require.NoError(t, err)

	got, err := svc.UpdateField(ctx, "owner", f.ID, []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, []string{events.TopicFieldCreated}, rec.Topics())
}

func TestUpdate_InvalidPatchLeavesRecord(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "owner", []byte(north))
	require.NoError(t, err)

	_, err = svc.UpdateField(ctx, "owner", f.ID, []byte(`{"name":"South","latitude":"100"}`))
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)

	stored, err := svc.ListFields(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, "North", stored[0].Name)
}

func TestDelete(t *testing.T) {
	svc, rec := newService(t)
	ctx := context.Background()

	f, err := svc.CreateField(ctx, "owner", []byte(north))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteField(ctx, "intruder", f.ID), apperr.ErrNotFound)
	require.NoError(t, svc.DeleteField(ctx, "owner", f.ID))
	assert.ErrorIs(t, svc.DeleteField(ctx, "owner", f.ID), apperr.ErrNotFound)

	assert.Equal(t, []string{events.TopicFieldCreated, events.TopicFieldDeleted}, rec.Topics())
}
