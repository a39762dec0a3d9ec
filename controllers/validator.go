package controllers

import (
	"errors"
	"fmt"
	"io"

	"github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MaxUploadSize bounds the multipart form for product creation.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// SetupForm is the credentials setup submission.
type SetupForm struct {
	ClientID     string `form:"client_id" validate:"required"`
	ClientSecret string `form:"client_secret" validate:"required"`
}

// ProductForm is the product creation submission (multipart).
type ProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required"`
	Currency    string `form:"currency" validate:"required,len=3"`
}

// RequestValidator handles form parsing and validation.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new RequestValidator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseSetupForm binds and validates the setup form. The raw form is
// returned even on error so the page can re-render the operator's input.
func (rv *RequestValidator) ParseSetupForm(c *gin.Context) (SetupForm, error) {
	var form SetupForm
	if err := c.ShouldBind(&form); err != nil {
		return form, fmt.Errorf("invalid form data: %w", err)
	}
	if err := rv.validate.Struct(&form); err != nil {
		return form, errors.New("both client ID and client secret are required")
	}
	return form, nil
}

// ParseProductForm binds and validates the product form including its
// uploaded images.
func (rv *RequestValidator) ParseProductForm(c *gin.Context) (services.ProductCreateRequest, error) {
	if err := c.Request.ParseMultipartForm(MaxUploadSize); err != nil {
		return services.ProductCreateRequest{}, errors.New("expected multipart form data")
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return services.ProductCreateRequest{}, fmt.Errorf("invalid form data: %w", err)
	}
	if err := rv.validate.Struct(&form); err != nil {
		return services.ProductCreateRequest{}, errors.New("name, price, and a three-letter currency are required")
	}

	req := services.ProductCreateRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Currency:    form.Currency,
	}

	if c.Request.MultipartForm != nil {
		files := c.Request.MultipartForm.File["images"]
		if len(files) > services.MaxProductImages {
			return services.ProductCreateRequest{}, fmt.Errorf("at most %d images are allowed", services.MaxProductImages)
		}
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return services.ProductCreateRequest{}, fmt.Errorf("failed to read image %s", fh.Filename)
			}
			data, err := io.ReadAll(f)
			f.Close() //nolint:errcheck
			if err != nil {
				return services.ProductCreateRequest{}, fmt.Errorf("failed to read image %s", fh.Filename)
			}
			req.Images = append(req.Images, services.ImageUpload{
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return req, nil
}
