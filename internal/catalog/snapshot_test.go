package catalog

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

type stubFetcher struct {
	products []Product
	err      error
	calls    int
}

func (s *stubFetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func TestSnapshotNotLoaded(t *testing.T) {
	t.Parallel()

	snap, err := NewSnapshot(&stubFetcher{}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Loaded() {
		t.Fatal("fresh snapshot must not report loaded")
	}

	_, err = snap.Products()
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUpstream {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = snap.Find("1")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUpstream {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSnapshotRefreshAndFind(t *testing.T) {
	t.Parallel()

	source := &stubFetcher{products: sampleCatalog()}
	snap, err := NewSnapshot(source, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := snap.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.Loaded() {
		t.Fatal("snapshot must report loaded after refresh")
	}

	products, err := snap.Products()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected three products, got %d", len(products))
	}

	p, err := snap.Find("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Away Jersey" {
		t.Fatalf("unexpected product: %+v", p)
	}

	_, err = snap.Find("missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSnapshotRefreshFailureKeepsPreviousCatalog(t *testing.T) {
	t.Parallel()

	source := &stubFetcher{products: sampleCatalog()}
	snap, err := NewSnapshot(source, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := snap.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source.err = errors.New("upstream down")
	if err := snap.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	products, err := snap.Products()
	if err != nil {
		t.Fatalf("previous catalog must survive a failed refresh: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected three products, got %d", len(products))
	}
}

func TestSnapshotProductsReturnsCopy(t *testing.T) {
	t.Parallel()

	source := &stubFetcher{products: sampleCatalog()}
	snap, _ := NewSnapshot(source, testLogger())
	if err := snap.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := snap.Products()
	first[0].Name = "Tampered"

	second, _ := snap.Products()
	if second[0].Name != "Home Jersey" {
		t.Fatalf("mutating a read leaked into the snapshot: %q", second[0].Name)
	}
}
