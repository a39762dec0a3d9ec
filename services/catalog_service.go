package services

import (
	"net/http"
	"strings"
	"time"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxProductImages caps the number of images accepted per product.
const MaxProductImages = 5

// ImageUpload is one uploaded product image.
type ImageUpload struct {
	ContentType string
	Data        []byte
}

// ProductCreateRequest carries validated form input for product creation.
type ProductCreateRequest struct {
	Name        string
	Description string
	Price       string
	Currency    string
	Images      []ImageUpload
}

// ProductSummary is a product plus its completed sale count, for the
// dashboard.
type ProductSummary struct {
	models.Product
	SalesCount int `json:"sales_count"`
}

// DashboardData is everything the operator dashboard renders.
type DashboardData struct {
	Products     []ProductSummary       `json:"products"`
	Payments     []models.PaymentRecord `json:"payments"`
	TotalRevenue string                 `json:"total_revenue"`
}

// CatalogService owns product creation and read models for the
// presentation layer.
type CatalogService interface {
	CreateProduct(req ProductCreateRequest) (*models.Product, *ServiceError)
	GetProduct(id string) (*models.Product, *ServiceError)
	GetPayment(orderID string) (*models.PaymentRecord, *ServiceError)
	Dashboard() *DashboardData
}

type catalogServiceImpl struct {
	products repository.ProductRepository
	ledger   repository.PaymentLedger
	images   repository.ImageStore
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	products repository.ProductRepository,
	ledger repository.PaymentLedger,
	images repository.ImageStore,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		products: products,
		ledger:   ledger,
		images:   images,
		logger:   logger,
	}
}

// CreateProduct normalizes the submitted price, stores the uploaded
// images, and inserts the product into the catalog.
func (s *catalogServiceImpl) CreateProduct(req ProductCreateRequest) (*models.Product, *ServiceError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Product name is required"}
	}

	price, err := models.NormalizePrice(req.Price)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Price must be a decimal with at most two fraction digits"}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(currency) != 3 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Currency must be a three-letter code"}
	}

	if len(req.Images) > MaxProductImages {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "At most five images are allowed"}
	}

	imageIDs := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Only image uploads are allowed"}
		}
		imageIDs = append(imageIDs, s.images.Save(img.ContentType, img.Data))
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Currency:    currency,
		ImageIDs:    imageIDs,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.products.Create(product); err != nil {
		s.logger.Error("Failed to store product", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to save product"}
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("price", product.Price),
	)

	return product, nil
}

func (s *catalogServiceImpl) GetProduct(id string) (*models.Product, *ServiceError) {
	product, ok := s.products.FindByID(id)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
	}
	return product, nil
}

func (s *catalogServiceImpl) GetPayment(orderID string) (*models.PaymentRecord, *ServiceError) {
	record, ok := s.ledger.FindByOrderID(orderID)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
	}
	return record, nil
}

// Dashboard assembles the operator view: newest products first with their
// sale counts, newest payments first, and the exact revenue total.
func (s *catalogServiceImpl) Dashboard() *DashboardData {
	products := s.products.List()
	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			Product:    *p,
			SalesCount: s.ledger.CountByProduct(p.ID),
		})
	}
	return &DashboardData{
		Products:     summaries,
		Payments:     s.ledger.List(),
		TotalRevenue: models.CentsToPrice(s.ledger.TotalRevenueCents()),
	}
}
