package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/ragindex"
	"github.com/lumenkb/lumen-server/internal/snowflake"
)

type memKnowledgeRepo struct {
	rows    map[int64]*Knowledge
	deleted map[int64]bool
}

func newMemKnowledgeRepo() *memKnowledgeRepo {
	return &memKnowledgeRepo{rows: make(map[int64]*Knowledge), deleted: make(map[int64]bool)}
}

func (m *memKnowledgeRepo) Create(ctx context.Context, k *Knowledge) error {
	m.rows[k.ID] = k
	return nil
}

func (m *memKnowledgeRepo) Save(ctx context.Context, k *Knowledge) error {
	m.rows[k.ID] = k
	return nil
}

func (m *memKnowledgeRepo) FindByID(ctx context.Context, id int64) (*Knowledge, error) {
	k, ok := m.rows[id]
	if !ok || m.deleted[id] {
		return nil, ErrKnowledgeNotFound
	}
	return k, nil
}

func (m *memKnowledgeRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Knowledge, error) {
	var out []Knowledge
	for id, k := range m.rows {
		if m.deleted[id] || k.CreatedBy != ownerID {
			continue
		}
		out = append(out, *k)
	}
	return out, nil
}

func (m *memKnowledgeRepo) NameExists(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	for id, k := range m.rows {
		if m.deleted[id] || id == excludeID {
			continue
		}
		if k.CreatedBy == ownerID && k.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memKnowledgeRepo) Remove(ctx context.Context, k *Knowledge) error {
	m.deleted[k.ID] = true
	return nil
}

type recordingProvider struct {
	created []int64
	removed []int64
}

func (p *recordingProvider) Create(ctx context.Context, id int64, cfg ragindex.IndexConfig) error {
	p.created = append(p.created, id)
	return nil
}

func (p *recordingProvider) Remove(ctx context.Context, id int64) error {
	p.removed = append(p.removed, id)
	return nil
}

func newTestService(t *testing.T) (KnowledgeService, *memKnowledgeRepo, *recordingProvider) {
	t.Helper()
	repo := newMemKnowledgeRepo()
	provider := &recordingProvider{}
	ids, err := snowflake.New(snowflake.WithWorkerID(3))
	require.NoError(t, err)
	opts := Options{Languages: []Language{{Name: "English", Value: "en"}, {Name: "中文", Value: "zh"}}}
	indexOpts := ragindex.Options{
		Participles: []ragindex.Participle{
			{Name: "ik", Plugins: []ragindex.PluginOption{{Name: "IK Smart", Value: "ik_smart"}}},
		},
	}
	return NewKnowledgeService(repo, provider, ids, zap.NewNop(), opts, indexOpts), repo, provider
}

func TestCreateAndGet(t *testing.T) {
	s, repo, provider := newTestService(t)
	ctx := context.Background()

	k, err := s.Create(ctx, 7, Input{Name: "  Handbook ", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Handbook", k.Name)
	assert.EqualValues(t, 7, k.CreatedBy)
	assert.NotZero(t, k.ID)
	require.Len(t, provider.created, 1)
	assert.Equal(t, k.ID, provider.created[0])

	got, err := s.Get(ctx, k.ID)
	require.NoError(t, err)
	assert.Equal(t, k.ID, got.ID)
	assert.Len(t, repo.rows, 1)
}

func TestCreateDuplicateNamePerOwner(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, 7, Input{Name: "Handbook"})
	require.NoError(t, err)

	_, err = s.Create(ctx, 7, Input{Name: "Handbook"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))

	// another owner may reuse the name
	_, err = s.Create(ctx, 8, Input{Name: "Handbook"})
	assert.NoError(t, err)
}

func TestUpdateRenameAndSelfCollision(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	k, err := s.Create(ctx, 7, Input{Name: "First"})
	require.NoError(t, err)
	_, err = s.Create(ctx, 7, Input{Name: "Second"})
	require.NoError(t, err)

	// keeping its own name is not a collision
	require.NoError(t, s.Update(ctx, 7, k.ID, Input{Name: "First", Description: "updated"}))

	err = s.Update(ctx, 7, k.ID, Input{Name: "Second"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))

	err = s.Update(ctx, 7, 12345, Input{Name: "Other"})
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestRemoveSoftDeletesAndDropsIndex(t *testing.T) {
	s, repo, provider := newTestService(t)
	ctx := context.Background()

	k, err := s.Create(ctx, 7, Input{Name: "Handbook"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, 7, k.ID))
	assert.True(t, repo.deleted[k.ID])
	require.Len(t, provider.removed, 1)
	assert.Equal(t, k.ID, provider.removed[0])

	_, err = s.Get(ctx, k.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	// the freed name is usable again
	_, err = s.Create(ctx, 7, Input{Name: "Handbook"})
	assert.NoError(t, err)
}

func TestListScopedToOwner(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, 7, Input{Name: "Mine"})
	require.NoError(t, err)
	_, err = s.Create(ctx, 8, Input{Name: "Theirs"})
	require.NoError(t, err)

	list, err := s.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].Name)
}

func TestLanguagesAndPlugins(t *testing.T) {
	s, _, _ := newTestService(t)

	langs := s.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, "zh", langs[1].Value)

	plugins := s.ParticiplePlugins()
	require.Len(t, plugins, 1)
	assert.Equal(t, "ik_smart", plugins[0].Value)
}
