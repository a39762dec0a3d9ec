package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type catalogFixture struct {
	products repository.ProductRepository
	ledger   repository.PaymentLedger
	images   repository.ImageStore
	service  CatalogService
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		products: repository.NewMemoryProductRepository(),
		ledger:   repository.NewMemoryPaymentLedger(),
		images:   repository.NewMemoryImageStore(),
	}
	f.service = NewCatalogService(f.products, f.ledger, f.images, zap.NewNop())
	return f
}

func TestCreateProductNormalizesPrice(t *testing.T) {
	f := newCatalogFixture()

	product, svcErr := f.service.CreateProduct(ProductCreateRequest{
		Name: "Widget", Price: "5", Currency: "usd",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "5.00", product.Price)
	assert.Equal(t, "USD", product.Currency)
	assert.NotEmpty(t, product.ID)

	stored, ok := f.products.FindByID(product.ID)
	assert.True(t, ok)
	assert.Equal(t, "5.00", stored.Price)
}

func TestCreateProductRejectsBadInput(t *testing.T) {
	f := newCatalogFixture()

	_, svcErr := f.service.CreateProduct(ProductCreateRequest{Name: "", Price: "5", Currency: "USD"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)

	_, svcErr = f.service.CreateProduct(ProductCreateRequest{Name: "Widget", Price: "5.999", Currency: "USD"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)

	_, svcErr = f.service.CreateProduct(ProductCreateRequest{Name: "Widget", Price: "5", Currency: "DOLLARS"})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestCreateProductStoresImages(t *testing.T) {
	f := newCatalogFixture()

	product, svcErr := f.service.CreateProduct(ProductCreateRequest{
		Name: "Widget", Price: "5", Currency: "USD",
		Images: []ImageUpload{
			{ContentType: "image/png", Data: []byte("png-bytes")},
			{ContentType: "image/jpeg", Data: []byte("jpg-bytes")},
		},
	})
	assert.Nil(t, svcErr)
	assert.Len(t, product.ImageIDs, 2)

	img, ok := f.images.FindByID(product.ImageIDs[0])
	assert.True(t, ok)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, []byte("png-bytes"), img.Data)
}

func TestCreateProductRejectsTooManyOrNonImages(t *testing.T) {
	f := newCatalogFixture()

	six := make([]ImageUpload, 6)
	for i := range six {
		six[i] = ImageUpload{ContentType: "image/png", Data: []byte("x")}
	}
	_, svcErr := f.service.CreateProduct(ProductCreateRequest{Name: "W", Price: "5", Currency: "USD", Images: six})
	assert.NotNil(t, svcErr)

	_, svcErr = f.service.CreateProduct(ProductCreateRequest{
		Name: "W", Price: "5", Currency: "USD",
		Images: []ImageUpload{{ContentType: "application/pdf", Data: []byte("x")}},
	})
	assert.NotNil(t, svcErr)
}

func TestDashboardCountsAndRevenue(t *testing.T) {
	f := newCatalogFixture()

	widget, _ := f.service.CreateProduct(ProductCreateRequest{Name: "Widget", Price: "9.99", Currency: "USD"})
	gadget, _ := f.service.CreateProduct(ProductCreateRequest{Name: "Gadget", Price: "5", Currency: "USD"})

	now := time.Now()
	f.ledger.Append(models.PaymentRecord{OrderID: "A", ProductID: widget.ID, Amount: "9.99", Currency: "USD", Status: models.PaymentStatusCompleted, CompletedAt: now})
	f.ledger.Append(models.PaymentRecord{OrderID: "B", ProductID: widget.ID, Amount: "9.99", Currency: "USD", Status: models.PaymentStatusCompleted, CompletedAt: now})
	f.ledger.Append(models.PaymentRecord{OrderID: "C", ProductID: gadget.ID, Amount: "5.00", Currency: "USD", Status: "PENDING", CompletedAt: now})

	data := f.service.Dashboard()
	assert.Equal(t, "19.98", data.TotalRevenue)
	assert.Len(t, data.Payments, 3)

	counts := map[string]int{}
	for _, p := range data.Products {
		counts[p.Name] = p.SalesCount
	}
	assert.Equal(t, 2, counts["Widget"])
	assert.Equal(t, 0, counts["Gadget"])
}

func TestGetPayment(t *testing.T) {
	f := newCatalogFixture()
	f.ledger.Append(models.PaymentRecord{OrderID: "ORDER1", Amount: "9.99", Status: models.PaymentStatusCompleted, CompletedAt: time.Now()})

	rec, svcErr := f.service.GetPayment("ORDER1")
	assert.Nil(t, svcErr)
	assert.Equal(t, "9.99", rec.Amount)

	_, svcErr = f.service.GetPayment("missing")
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
