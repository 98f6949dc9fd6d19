package mockstore

import (
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
)

// Data is the full content of a store.
type Data struct {
	Profile      models.Profile
	Products     []models.Product
	Clients      []models.Client
	Orders       []models.Order
	Transactions []models.Transaction
}

const mockOwner = "user_123"

func perfume(id, ref, name, brand, category string, price float64, stock, threshold int, image string) models.Product {
	return models.Product{
		ID:             id,
		OwnerID:        mockOwner,
		Name:           name,
		Brand:          brand,
		Category:       category,
		Cat70ml:        ref,
		Price70ml:      price,
		Stock70ml:      stock,
		AlertThreshold: threshold,
		ImageURL:       image,
		IsActive:       true,
	}
}

// Fixtures is the demo data a fresh store starts with.
func Fixtures() Data {
	seeded := time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC)

	products := []models.Product{
		perfume("p1", "069", "ACQUA DI SALE", "PROFUMUM ROMA", "HOMME", 69, 5, 2, "https://picsum.photos/400/400?random=1"),
		perfume("p2", "042", "LA VIE EST BELLE", "LANCOME", "FEMME", 85, 12, 3, "https://picsum.photos/400/400?random=2"),
		perfume("p3", "142", "OMBRE LEATHER", "TOM FORD", "MIXTES LUXES", 142, 2, 2, "https://picsum.photos/400/400?random=3"),
		perfume("p4", "047", "CRYSTAL NOIR", "VERSACE", "FEMME", 47, 8, 2, "https://picsum.photos/400/400?random=4"),
		perfume("p5", "130", "MEGAMARE", "ORTO PARISI", "LUXURY MIXTES", 130, 0, 2, "https://picsum.photos/400/400?random=5"),
		perfume("p6", "123", "GOOD GIRL GONE BAD", "KILLIAN", "LUXURY FEMME", 123, 4, 2, "https://picsum.photos/400/400?random=6"),
	}
	for i := range products {
		products[i].CreatedAt = seeded
		products[i].UpdatedAt = seeded
		products[i].Normalize()
	}

	cost := func(v float64) *float64 { return &v }
	order1 := models.Order{
		ID:            "ord_1",
		OwnerID:       mockOwner,
		ClientID:      "c1",
		Status:        models.OrderDelivered,
		PaymentStatus: models.PaymentPaid,
		CreatedAt:     time.Date(2023, 11, 15, 10, 30, 0, 0, time.UTC),
		Items: []models.LineItem{
			{ProductID: "p2", ProductName: "LA VIE EST BELLE", Size: models.Size70ml, Quantity: 1, UnitPrice: 85, UnitCost: cost(42)},
			{ProductID: "p4", ProductName: "CRYSTAL NOIR", Size: models.Size70ml, Quantity: 1, UnitPrice: 47, UnitCost: cost(23.5)},
		},
	}
	order2 := models.Order{
		ID:            "ord_2",
		OwnerID:       mockOwner,
		ClientID:      "c2",
		Status:        models.OrderShipped,
		PaymentStatus: models.PaymentPaid,
		CreatedAt:     time.Date(2023, 10, 20, 14, 15, 0, 0, time.UTC),
		Items: []models.LineItem{
			{ProductID: "p2", ProductName: "LA VIE EST BELLE", Size: models.Size70ml, Quantity: 1, UnitPrice: 85, UnitCost: cost(42)},
		},
	}
	orders := []models.Order{order1, order2}
	for i := range orders {
		orders[i].Prepare()
		orders[i].UpdatedAt = orders[i].CreatedAt
	}

	return Data{
		Profile: models.Profile{
			ID:        mockOwner,
			Email:     "sophie@wonder-team.example",
			FullName:  "Sophie (Wonder Team)",
			Role:      models.RoleVDI,
			TeamName:  "Les Ambassadrices",
			AvatarURL: "https://picsum.photos/200/200",
			Sponsor:   "Clara Delavie",
			Recruits: []models.Recruit{
				{ID: "r1", Name: "Julie Dupont", JoinDate: "2023-01-15"},
				{ID: "r2", Name: "Manon Lescaut", JoinDate: "2023-03-22"},
			},
			UpdatedAt: seeded,
		},
		Products: products,
		Clients: []models.Client{
			{
				ID: "c1", OwnerID: mockOwner, FullName: "Julie Martin", Email: "julie.m@example.com",
				Phone: "06 12 34 56 78", Status: models.ClientVIP, LastPurchaseDate: "2023-11-15",
				Notes: "Aime les parfums floraux. Anniversaire en Mars.", TotalSpent: orders[0].TotalAmount,
				LoyaltyPoints: int(orders[0].TotalAmount), IsActive: true, CreatedAt: seeded, UpdatedAt: seeded,
			},
			{
				ID: "c2", OwnerID: mockOwner, FullName: "Thomas Bernard", Email: "thomas.b@example.com",
				Phone: "06 98 76 54 32", Status: models.ClientActive, LastPurchaseDate: "2023-10-20",
				Notes: "Client régulier pour cadeaux.", TotalSpent: orders[1].TotalAmount,
				LoyaltyPoints: int(orders[1].TotalAmount), IsActive: true, CreatedAt: seeded, UpdatedAt: seeded,
			},
			{
				ID: "c3", OwnerID: mockOwner, FullName: "Sarah Dubos", Email: "sarah.d@example.com",
				Phone: "07 55 44 33 22", Status: models.ClientNew,
				Notes: "Rencontrée lors de la réunion du 15.", IsActive: true, CreatedAt: seeded, UpdatedAt: seeded,
			},
		},
		Orders: orders,
		Transactions: []models.Transaction{
			withID(models.SaleFor(orders[0], orders[0].CreatedAt), "tx_1"),
			withID(models.SaleFor(orders[1], orders[1].CreatedAt), "tx_2"),
		},
	}
}

func withID(t models.Transaction, id string) models.Transaction {
	t.ID = id
	return t
}
