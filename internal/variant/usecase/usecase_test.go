package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/repository"
)

func newUseCase() *variantUseCase {
	return NewVariantUseCase(repository.NewMemoryRepository(), logger.NewNop()).(*variantUseCase)
}

func TestCreateStoresEmptyAttributes(t *testing.T) {
	uc := newUseCase()
	v, err := uc.CreateVariant(context.Background(), &dto.CreateVariantInput{ProductID: "p1", SKU: "V1", Name: "Small"})
	if err != nil {
		t.Fatal(err)
	}
	if v.VariantID == "" || !v.Active || string(v.Attributes) != "{}" || v.ProductID != "p1" {
		t.Fatalf("created %+v", v)
	}
}

func TestGetRequiresMatchingProduct(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	v, err := uc.CreateVariant(ctx, &dto.CreateVariantInput{ProductID: "p1", SKU: "V1", Name: "Small"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.GetVariant(ctx, dto.VariantRef{ProductID: "p1", VariantID: v.VariantID}); err != nil {
		t.Fatalf("get: %v", err)
	}
	_, err = uc.GetVariant(ctx, dto.VariantRef{ProductID: "p2", VariantID: v.VariantID})
	if apperr.KindOf(err) != apperr.KindNotFound || err.Error() != "Product variant not found" {
		t.Fatalf("wrong product: %v", err)
	}
}

func TestUpdateAndSoftDelete(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	v, err := uc.CreateVariant(ctx, &dto.CreateVariantInput{ProductID: "p1", SKU: "V1", Name: "Small"})
	if err != nil {
		t.Fatal(err)
	}

	uc.now = func() time.Time { return v.CreatedAt.Add(time.Minute) }
	updated, err := uc.UpdateVariant(ctx, &dto.UpdateVariantInput{VariantID: v.VariantID, Name: "Large"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Large" || !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("updated %+v", updated)
	}

	if err := uc.DeleteVariant(ctx, dto.VariantRef{ProductID: "p1", VariantID: v.VariantID}); err != nil {
		t.Fatal(err)
	}
	page, err := uc.ListVariants(ctx, &dto.VariantFilters{Params: query.Params{Size: 20}, ProductID: "p1"})
	if err != nil || len(page.Data) != 0 {
		t.Fatalf("list after delete: %+v %v", page, err)
	}
	if _, err := uc.UpdateVariant(ctx, &dto.UpdateVariantInput{VariantID: v.VariantID, Name: "X"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("update after delete: %v", err)
	}
	if _, err := uc.CreateVariant(ctx, &dto.CreateVariantInput{ProductID: "p1", SKU: "V1", Name: "Again"}); apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("recreate: %v", err)
	}
}

func TestListScopedToProduct(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	for _, in := range []*dto.CreateVariantInput{
		{ProductID: "p1", SKU: "B", Name: "Blue"},
		{ProductID: "p1", SKU: "A", Name: "Amber"},
		{ProductID: "p2", SKU: "C", Name: "Blue"},
	} {
		if _, err := uc.CreateVariant(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	page, err := uc.ListVariants(ctx, &dto.VariantFilters{Params: query.Params{Size: 20, Sort: "sku,asc"}, ProductID: "p1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Data) != 2 || page.Data[0].SKU != "A" || page.Data[1].SKU != "B" {
		t.Fatalf("page = %+v", page.Data)
	}

	page, _ = uc.ListVariants(ctx, &dto.VariantFilters{Params: query.Params{Size: 20}, ProductID: "p1", Name: "blu"})
	if page.Pagination.TotalElements != 1 || page.Data[0].SKU != "B" {
		t.Fatalf("name filter = %+v", page)
	}
}
