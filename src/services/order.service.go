package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"percetakan-backend/src/models"
)

// ============ REQUEST STRUCTS ============
type CreateOrderRequest struct {
	NotaID       string
	CustomerName string
	OrderDate    string
	Items        []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID     uint
	FinishingName string
	Description   string
	Length        string
	Width         string
	Qty           float64
	CustomPrice   *float64
}

type ProcessPaymentRequest struct {
	NotaID   string
	Discount float64
}

type AddPaymentRequest struct {
	NotaID string
	Amount float64
	Date   string
	Method string
}

// ============ ORDER SERVICE ============
type OrderService struct {
	DB *gorm.DB
}

// CreateOrder creates a new order. Line prices come from the resolver
// (CustomPrice overrides the resolver result); TotalPrice and Details are
// snapshots taken at creation and never recomputed afterwards.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.NotaID == "" {
		return nil, errors.New("nota id is required")
	}
	if len(req.Items) == 0 {
		return nil, errors.New("order must have at least one item")
	}

	var order *models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("nota_id = ?", req.NotaID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("nota id already exists")
		}

		var products []models.Product
		var categories []models.Category
		var customers []models.Customer
		var finishings []models.Finishing
		if err := tx.Find(&products).Error; err != nil {
			return err
		}
		if err := tx.Find(&categories).Error; err != nil {
			return err
		}
		if err := tx.Find(&customers).Error; err != nil {
			return err
		}
		if err := tx.Find(&finishings).Error; err != nil {
			return err
		}

		total := 0.0
		var details []string
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			item := models.OrderItem{
				ProductID:     it.ProductID,
				FinishingName: it.FinishingName,
				Description:   it.Description,
				Length:        it.Length,
				Width:         it.Width,
				Qty:           it.Qty,
				CustomPrice:   it.CustomPrice,
			}
			linePrice := PriceOrderItem(item, req.CustomerName, products, categories, customers, finishings)
			if it.CustomPrice != nil {
				linePrice = *it.CustomPrice * it.Qty
			}
			total += linePrice
			details = append(details, fmt.Sprintf("%s x%g", it.Description, it.Qty))
			items = append(items, item)
		}

		order = &models.Order{
			NotaID:       req.NotaID,
			CustomerName: req.CustomerName,
			OrderDate:    req.OrderDate,
			Items:        items,
			TotalPrice:   total,
			Details:      strings.Join(details, ", "),
		}
		return tx.Create(order).Error
	})

	if err == nil {
		logrus.WithFields(logrus.Fields{
			"nota_id": req.NotaID,
			"total":   order.TotalPrice,
		}).Info("order created")
	}
	return order, err
}

// ProcessForPayment turns an order into a receivable and puts its card into
// the production queue, in one transaction.
func (s *OrderService) ProcessForPayment(req ProcessPaymentRequest) (*models.Receivable, error) {
	var receivable *models.Receivable

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("nota_id = ?", req.NotaID).First(&order).Error; err != nil {
			return errors.New("order not found")
		}

		var count int64
		if err := tx.Model(&models.Receivable{}).Where("nota_id = ?", req.NotaID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("order already processed for payment")
		}

		receivable = &models.Receivable{
			NotaID:           req.NotaID,
			Amount:           order.TotalPrice,
			Discount:         req.Discount,
			PaymentStatus:    models.PaymentStatusUnpaid,
			ProductionStatus: models.ProductionStatusQueue,
		}
		if err := tx.Create(receivable).Error; err != nil {
			return err
		}

		card := &models.KanbanCard{NotaID: req.NotaID, Stage: models.StageQueue}
		return tx.Create(card).Error
	})

	return receivable, err
}

// AddPayment records a payment. Status flips to Lunas once remaining <= 0;
// overpayment never becomes a negative balance.
func (s *OrderService) AddPayment(req AddPaymentRequest) (*models.Receivable, error) {
	if req.Amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}

	var receivable models.Receivable
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Payments").Where("nota_id = ?", req.NotaID).First(&receivable).Error; err != nil {
			return errors.New("receivable not found")
		}

		payment := models.Payment{
			ReceivableID: receivable.ID,
			RefCode:      uuid.NewString(),
			Amount:       req.Amount,
			Date:         req.Date,
			Method:       req.Method,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		receivable.Payments = append(receivable.Payments, payment)

		if receivable.Remaining() <= 0 {
			receivable.PaymentStatus = models.PaymentStatusPaid
			if err := tx.Model(&models.Receivable{}).Where("id = ?", receivable.ID).
				Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err == nil {
		logrus.WithFields(logrus.Fields{
			"nota_id": req.NotaID,
			"amount":  req.Amount,
			"status":  receivable.PaymentStatus,
		}).Info("payment recorded")
	}
	return &receivable, err
}
