package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"percetakan-backend/src/config"
	"percetakan-backend/src/handlers"
	"percetakan-backend/src/models"
	"percetakan-backend/src/repositories"
	"percetakan-backend/src/routes"
	"percetakan-backend/src/services"
)

func main() {
	// .env opsional; env asli menang
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db := config.InitDB()

	db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Receivable{},
		&models.Payment{},
		&models.ExpenseItem{},
		&models.LegacyIncome{},
		&models.LegacyExpense{},
		&models.LegacyReceivable{},
		&models.AssetItem{},
		&models.DebtItem{},
		&models.InventoryItem{},
		&models.StockUsage{},
		&models.KanbanCard{},
		&models.Product{},
		&models.Category{},
		&models.Finishing{},
		&models.Customer{},
		&models.Employee{},
	)

	// Insert sample data jika kosong
	if err := seedSampleData(db); err != nil {
		logrus.Warnf("failed to seed sample data: %v", err)
	}

	// Initialize repository & services
	repo := &repositories.SnapshotRepository{DB: db}

	h := routes.Handlers{
		Dashboard: &handlers.DashboardHandler{Repo: repo},
		Report:    &handlers.ReportHandler{Repo: repo},
		Order:     &handlers.OrderHandler{Service: &services.OrderService{DB: db}},
		Ledger:    &handlers.LedgerHandler{Service: &services.LedgerService{DB: db}},
		Inventory: &handlers.InventoryHandler{Service: &services.InventoryService{DB: db}},
		Kanban:    &handlers.KanbanHandler{Service: &services.KanbanService{DB: db}},
	}

	router := gin.Default()

	api := router.Group("/api/v1")
	routes.RegisterRoutes(api, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}

func seedSampleData(db *gorm.DB) error {
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)

	if categoryCount == 0 {
		logrus.Info("seeding sample categories, products, finishings")

		categories := []models.Category{
			{Name: "Banner", UnitType: models.UnitTypeArea},
			{Name: "Stiker", UnitType: models.UnitTypeArea},
			{Name: "Kartu Nama", UnitType: models.UnitTypeFlat},
		}
		for _, cat := range categories {
			if err := db.FirstOrCreate(&cat, "name = ?", cat.Name).Error; err != nil {
				return err
			}
		}

		products := []models.Product{
			{
				Name: "Flexi 280gr", CategoryName: "Banner",
				PriceEndCustomer: 25000, PriceRetail: 23000, PriceGrosir: 20000,
				PriceReseller: 18000, PriceCorporate: 22000,
			},
			{
				Name: "Vinyl Glossy", CategoryName: "Stiker",
				PriceEndCustomer: 45000, PriceRetail: 42000, PriceGrosir: 38000,
				PriceReseller: 35000, PriceCorporate: 40000,
			},
			{
				Name: "Art Carton 260gr", CategoryName: "Kartu Nama",
				PriceEndCustomer: 35000, PriceRetail: 32000, PriceGrosir: 28000,
				PriceReseller: 25000, PriceCorporate: 30000,
			},
		}
		for _, p := range products {
			if err := db.FirstOrCreate(&p, "name = ?", p.Name).Error; err != nil {
				return err
			}
		}

		finishings := []models.Finishing{
			{Name: "Mata Ayam", Surcharge: 5000},
			{Name: "Laminasi Doff", Surcharge: 10000},
			{Name: "Tanpa Finishing", Surcharge: 0},
		}
		for _, fin := range finishings {
			if err := db.FirstOrCreate(&fin, "name = ?", fin.Name).Error; err != nil {
				return err
			}
		}
	}

	var employeeCount int64
	db.Model(&models.Employee{}).Count(&employeeCount)

	if employeeCount == 0 {
		logrus.Info("seeding owner account")

		owner := models.Employee{
			Name: "Owner",
			Role: "owner",
			Permissions: []string{
				services.PermDashboardSales,
				services.PermDashboardFinance,
				services.PermDashboardProduction,
				services.PermReportSales,
				services.PermReportReceivables,
				services.PermReportInventory,
			},
		}
		if err := db.FirstOrCreate(&owner, "name = ?", owner.Name).Error; err != nil {
			return err
		}
	}

	return nil
}
