package parts

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partkit/partkit/internal/domain/catalog"
	"github.com/partkit/partkit/internal/domain/shared"
	"github.com/partkit/partkit/internal/domain/subscription"
)

// fakeClient serves canned records and counts subscription calls.
type fakeClient struct {
	records  map[string]*catalog.ProductRecord
	prices   map[string][]catalog.PriceBreak
	added    []string
	removed  []string
	failAdds bool
}

func (f *fakeClient) Login(ctx context.Context, username, password string) error { return nil }
func (f *fakeClient) Logout(ctx context.Context) error                           { return nil }

func (f *fakeClient) GetProduct(ctx context.Context, pn string) (*catalog.ProductRecord, error) {
	if r, ok := f.records[pn]; ok {
		return r, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeClient) GetPrice(ctx context.Context, pn string) ([]catalog.PriceBreak, error) {
	return f.prices[pn], nil
}

func (f *fakeClient) GetChanges(ctx context.Context, since string) ([]catalog.ChangedProduct, error) {
	return nil, nil
}

func (f *fakeClient) AddProduct(ctx context.Context, pn string) error {
	if f.failAdds {
		return shared.ErrUnauthorized
	}
	f.added = append(f.added, pn)
	return nil
}

func (f *fakeClient) RemoveProduct(ctx context.Context, pn string) error {
	f.removed = append(f.removed, pn)
	return nil
}

func (f *fakeClient) DownloadImages(ctx context.Context, pn, dir string) ([]string, error) {
	return nil, nil
}

func (f *fakeClient) DownloadCAD(ctx context.Context, pn, dir string, formats []string) ([]string, error) {
	return nil, nil
}

func (f *fakeClient) DownloadDatasheets(ctx context.Context, pn, dir string) ([]string, error) {
	return nil, nil
}

// memRepo is an in-memory subscription.Repository.
type memRepo struct {
	subs map[string]*subscription.Subscription
}

func newMemRepo() *memRepo {
	return &memRepo{subs: make(map[string]*subscription.Subscription)}
}

func (m *memRepo) Add(ctx context.Context, sub *subscription.Subscription) error {
	if _, ok := m.subs[sub.PartNumber]; ok {
		return shared.ErrAlreadyExists
	}
	m.subs[sub.PartNumber] = sub
	return nil
}

func (m *memRepo) Remove(ctx context.Context, pn string) error {
	if _, ok := m.subs[pn]; !ok {
		return shared.ErrNotFound
	}
	delete(m.subs, pn)
	return nil
}

func (m *memRepo) FindByPartNumber(ctx context.Context, pn string) (*subscription.Subscription, error) {
	sub, ok := m.subs[pn]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return sub, nil
}

func (m *memRepo) List(ctx context.Context) ([]*subscription.Subscription, error) {
	keys := make([]string, 0, len(m.subs))
	for k := range m.subs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*subscription.Subscription, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.subs[k])
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	if _, ok := m.subs[sub.PartNumber]; !ok {
		return shared.ErrNotFound
	}
	m.subs[sub.PartNumber] = sub
	return nil
}

func (m *memRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.subs)), nil
}

func screwRecord(pn string) *catalog.ProductRecord {
	return &catalog.ProductRecord{
		PartNumber:        pn,
		DetailDescription: "Button Head Hex Drive Screw",
		FamilyDescription: "Button Head Hex Drive Screws",
		ProductCategory:   "Screws and Bolts",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"18-8 Stainless Steel"}},
			{Attribute: "Thread Size", Values: []string{`1/4"-20`}},
			{Attribute: "Length", Values: []string{`3/4"`}},
			{Attribute: "Drive Style", Values: []string{"Hex"}},
		},
	}
}

func newTestService(client *fakeClient) (*Service, *memRepo) {
	repo := newMemRepo()
	return NewService(client, repo, nil), repo
}

func TestNameProduct(t *testing.T) {
	client := &fakeClient{records: map[string]*catalog.ProductRecord{
		"91255A540": screwRecord("91255A540"),
	}}
	svc, repo := newTestService(client)

	result, err := svc.NameProduct(context.Background(), "91255a540")
	require.NoError(t, err)
	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", result.Name)

	// Fetch auto-tracks the part
	_, err = repo.FindByPartNumber(context.Background(), "91255A540")
	assert.NoError(t, err)
}

func TestNameProductNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeClient{})

	_, err := svc.NameProduct(context.Background(), "00000A000")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAnalyzeProduct(t *testing.T) {
	client := &fakeClient{records: map[string]*catalog.ProductRecord{
		"91255A540": screwRecord("91255A540"),
	}}
	svc, _ := newTestService(client)

	analysis, err := svc.AnalyzeProduct(context.Background(), "91255A540")
	require.NoError(t, err)
	assert.Equal(t, "button_head_screw", analysis.DetectedType)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	client := &fakeClient{}
	svc, repo := newTestService(client)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, " 91255a540 "))
	assert.Equal(t, []string{"91255A540"}, client.added)

	_, err := repo.FindByPartNumber(ctx, "91255A540")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "91255A540"))
	assert.Equal(t, []string{"91255A540"}, client.removed)
	_, err = repo.FindByPartNumber(ctx, "91255A540")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSubscribeEmptyPartNumber(t *testing.T) {
	svc, _ := newTestService(&fakeClient{})
	assert.ErrorIs(t, svc.Subscribe(context.Background(), "  "), shared.ErrInvalidInput)
}

func TestSync(t *testing.T) {
	client := &fakeClient{records: map[string]*catalog.ProductRecord{
		"91255A540": screwRecord("91255A540"),
	}}
	svc, repo := newTestService(client)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, "91255A540"))
	require.NoError(t, svc.Subscribe(ctx, "00000A000")) // upstream ok, fetch will fail

	results, err := svc.Sync(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "00000A000", results[0].PartNumber)
	assert.Error(t, results[0].Err)

	assert.Equal(t, "91255A540", results[1].PartNumber)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", results[1].Name)

	sub, err := repo.FindByPartNumber(ctx, "91255A540")
	require.NoError(t, err)
	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", sub.GeneratedName)
	assert.NotNil(t, sub.LastSyncedAt)
}

func TestImport(t *testing.T) {
	client := &fakeClient{}
	svc, repo := newTestService(client)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, "94639A115"))

	path := filepath.Join(t.TempDir(), "parts.txt")
	content := "# fastener order\n91255a540\n\n94639A115\n98023A031\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stats, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Subscribed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestImportFailures(t *testing.T) {
	client := &fakeClient{failAdds: true}
	svc, _ := newTestService(client)

	path := filepath.Join(t.TempDir(), "parts.txt")
	require.NoError(t, os.WriteFile(path, []byte("91255A540\n"), 0o644))

	stats, err := svc.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
}

func TestImportMissingFile(t *testing.T) {
	svc, _ := newTestService(&fakeClient{})
	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
