package source

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"supergo/internal/model"
	"supergo/internal/state"
)

// seedSource serves the built-in demo catalogue. An optional delay simulates
// network latency the way the original mock API did.
type seedSource struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewSeedSource creates a data source backed by the embedded demo catalogue.
func NewSeedSource(delay time.Duration, logger zerolog.Logger) Source {
	return &seedSource{
		delay:  delay,
		logger: logger.With().Str("component", "seed-source").Logger(),
	}
}

func (s *seedSource) FetchInitialData(ctx context.Context) (*state.InitialData, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	data := SeedData(time.Now())
	s.logger.Info().
		Int("products", len(data.Products)).
		Int("users", len(data.Users)).
		Int("coupons", len(data.Coupons)).
		Msg("seed catalogue loaded")
	return data, nil
}

// SeedData builds the demo catalogue. Validity windows for coupons and
// banners are anchored on the given time.
func SeedData(now time.Time) *state.InitialData {
	day := 24 * time.Hour
	return &state.InitialData{
		Products: []model.Product{
			{ID: 1, Name: "Aceite de Oliva Extra Virgen", MainCategory: "abarrotes", Category: "aceites", Price: 55.50, OriginalPrice: 65.50, Stock: 25, Rating: 4.5, ReviewCount: 128, SKU: "ACE-001", Features: []string{"Extra virgen", "Primera prensada en frío", "500ml"}, Tags: []string{"orgánico", "premium", "saludable"}},
			{ID: 2, Name: "Arroz Blanco Grano Largo", MainCategory: "abarrotes", Category: "granos", Price: 12.00, Stock: 50, Rating: 4.2, ReviewCount: 89, SKU: "ARR-001", Features: []string{"Grano largo", "Bolsa de 1kg"}, Tags: []string{"básico", "económico"}},
			{ID: 3, Name: "Filete de Res Premium", MainCategory: "carnes", Category: "res", Price: 75.00, Stock: 15, Rating: 4.8, ReviewCount: 45, SKU: "CAR-001", Features: []string{"Corte premium", "Empacado al vacío"}, Tags: []string{"premium", "fresco"}, IsFeatured: true},
			{ID: 4, Name: "Pechuga de Pollo Orgánica", MainCategory: "carnes", Category: "pollo", Price: 28.00, Stock: 30, Rating: 4.3, ReviewCount: 67, SKU: "POL-001", Features: []string{"Orgánico", "Sin antibióticos"}, Tags: []string{"orgánico", "saludable"}},
			{ID: 5, Name: "Chorizo Argentino Artesanal", MainCategory: "carnes", Category: "embutidos", Price: 45.00, OriginalPrice: 50.00, Stock: 20, Rating: 4.7, ReviewCount: 34, SKU: "EMB-001", Features: []string{"Artesanal", "Paquete de 4 unidades"}, Tags: []string{"artesanal", "premium", "argentino"}},
			{ID: 6, Name: "Salmón Fresco Noruego", MainCategory: "pescados", Category: "salmón", Price: 95.00, Stock: 8, Rating: 4.9, ReviewCount: 23, SKU: "PES-001", Features: []string{"Fresco", "Filete sin piel"}, Tags: []string{"premium", "fresco", "noruego"}, IsFeatured: true},
			{ID: 7, Name: "Queso Gouda Holandés", MainCategory: "lacteos", Category: "quesos", Price: 32.00, Stock: 18, Rating: 4.4, ReviewCount: 56, SKU: "QUE-001", Features: []string{"Añejado 6 meses", "Cuña de 250g"}, Tags: []string{"importado", "premium"}},
			{ID: 8, Name: "Yogur Griego Natural", MainCategory: "lacteos", Category: "yogures", Price: 8.50, Stock: 35, Rating: 4.1, ReviewCount: 42, SKU: "YOG-001", Features: []string{"Alto en proteína", "Pote de 500g"}, Tags: []string{"saludable", "proteína"}},
			{ID: 9, Name: "Manzanas Royal Gala", MainCategory: "frutas", Category: "manzanas", Price: 6.00, Stock: 60, Rating: 4.0, ReviewCount: 31, SKU: "FRU-001", Features: []string{"Bolsa de 1kg", "Origen nacional"}, Tags: []string{"fresco", "dulce"}},
			{ID: 10, Name: "Aguacates Hass Maduros", MainCategory: "frutas", Category: "aguacates", Price: 18.00, Stock: 0, Rating: 4.6, ReviewCount: 78, SKU: "FRU-002", Features: []string{"Listos para consumir", "Bolsa de 4 unidades"}, Tags: []string{"maduro", "cremoso"}},
			{ID: 11, Name: "Pan Integral Multigrano", MainCategory: "panaderia", Category: "panes", Price: 15.00, Stock: 25, Rating: 4.3, ReviewCount: 29, SKU: "PAN-001", Features: []string{"Alto en fibra", "Barra de 500g"}, Tags: []string{"integral", "saludable"}},
			{ID: 12, Name: "Croissants de Mantequilla", MainCategory: "panaderia", Category: "pasteles", Price: 4.50, Stock: 40, Rating: 4.7, ReviewCount: 63, SKU: "PAN-002", Features: []string{"Mantequilla 100%", "Paquete de 4 unidades"}, Tags: []string{"mantequilla", "francés"}, IsFeatured: true},
			{ID: 13, Name: "Vino Tinto Malbec", MainCategory: "bebidas", Category: "vinos", Price: 120.00, Stock: 12, Rating: 4.8, ReviewCount: 18, SKU: "VIN-001", Features: []string{"Botella 750ml", "13.5% alcohol"}, Tags: []string{"argentino", "premium", "tinto"}},
			{ID: 14, Name: "Café Molido Premium", MainCategory: "bebidas", Category: "café", Price: 45.00, Stock: 28, Rating: 4.5, ReviewCount: 95, SKU: "CAF-001", Features: []string{"100% arábica", "Paquete de 500g"}, Tags: []string{"premium", "arábica"}},
			{ID: 15, Name: "Agua Mineral Sin Gas", MainCategory: "bebidas", Category: "aguas", Price: 8.00, Stock: 100, Rating: 4.0, ReviewCount: 24, SKU: "AGU-001", Features: []string{"Botella 1.5L", "6 unidades"}, Tags: []string{"natural", "hidratante"}},
		},
		Users: []model.User{
			{ID: "1", Name: "Administrador", Email: "admin@supergo.com", Password: "admin_2025", Role: model.RoleAdmin, Phone: "+502 1234-5678", Address: "6a Avenida 7-50, Zona 1", LoyaltyPoints: 1250, Wishlist: []int{3, 6, 13}, PaymentMethods: []model.SavedPaymentMethod{{ID: "pm_1", Last4: "1234", Brand: "Visa", Expiry: "12/25"}}},
			{ID: "2", Name: "Juan Perez", Email: "juan@example.com", Password: "password123", Role: model.RoleUser, Phone: "+502 5555-4321", Address: "Calle Falsa 123, Zona 10", LoyaltyPoints: 350},
		},
		Stores: []model.Store{
			{ID: "1", Name: "SuperGo Centro", Address: "6a Avenida 7-50, Zona 1", Phone: "+502 1234-5678", Hours: "7:00 - 22:00", Lat: "14.6349", Lng: "-90.5069"},
			{ID: "2", Name: "SuperGo Norte", Address: "Plaza Norte, Local 15", Phone: "+502 2345-6789", Hours: "8:00 - 21:00", Lat: "14.6472", Lng: "-90.5357"},
			{ID: "3", Name: "SuperGo Sur", Address: "Centro Comercial Sur, Nivel 2", Phone: "+502 3456-7890", Hours: "7:30 - 21:30", Lat: "14.5928", Lng: "-90.5485"},
		},
		Categories: []model.Category{
			{ID: "abarrotes", Name: "Abarrotes", Icon: "shopping_basket", Color: "#6750A4", Subcategories: []model.Subcategory{{ID: "aceites", Name: "Aceites"}, {ID: "cereales", Name: "Cereales"}, {ID: "granos", Name: "Granos"}, {ID: "conservas", Name: "Conservas"}}},
			{ID: "carnes", Name: "Carnicería", Icon: "kebab_dining", Color: "#B3261E", Subcategories: []model.Subcategory{{ID: "res", Name: "Res"}, {ID: "pollo", Name: "Pollo"}, {ID: "embutidos", Name: "Embutidos"}, {ID: "cerdo", Name: "Cerdo"}}},
			{ID: "pescados", Name: "Pescadería", Icon: "set_meal", Color: "#0288D1", Subcategories: []model.Subcategory{{ID: "salmón", Name: "Salmón"}, {ID: "atún", Name: "Atún"}, {ID: "mariscos", Name: "Mariscos"}}},
			{ID: "lacteos", Name: "Lácteos", Icon: "local_cafe", Color: "#2E7D32", Subcategories: []model.Subcategory{{ID: "quesos", Name: "Quesos"}, {ID: "yogures", Name: "Yogures"}, {ID: "leches", Name: "Leches"}}},
			{ID: "frutas", Name: "Frutas y Verduras", Icon: "nutrition", Color: "#4CAF50", Subcategories: []model.Subcategory{{ID: "manzanas", Name: "Manzanas"}, {ID: "aguacates", Name: "Aguacates"}, {ID: "citricos", Name: "Cítricos"}}},
			{ID: "panaderia", Name: "Panadería", Icon: "bakery_dining", Color: "#F57C00", Subcategories: []model.Subcategory{{ID: "panes", Name: "Panes"}, {ID: "pasteles", Name: "Pasteles"}, {ID: "galletas", Name: "Galletas"}}},
			{ID: "bebidas", Name: "Bebidas", Icon: "local_bar", Color: "#7B1FA2", Subcategories: []model.Subcategory{{ID: "vinos", Name: "Vinos"}, {ID: "café", Name: "Café"}, {ID: "aguas", Name: "Aguas"}, {ID: "refrescos", Name: "Refrescos"}}},
		},
		Orders: []model.Order{
			{ID: "1001", UserID: "1", CustomerName: "Administrador", Date: now, Total: 80.50, Status: model.OrderCompleted, Items: []model.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 2}}, Delivery: model.Delivery{Method: model.DeliveryPickup, StoreID: "1"}, PaymentMethod: "Tarjeta"},
			{ID: "1002", UserID: "2", CustomerName: "Juan Perez", Date: now.Add(-2 * day), Total: 75.00, Status: model.OrderCompleted, Items: []model.CartItem{{ProductID: 3, Quantity: 1}}, Delivery: model.Delivery{Method: model.DeliveryShipping, Address: "Calle Falsa 123, Zona 10"}, PaymentMethod: "Tarjeta"},
		},
		Coupons: []model.Coupon{
			{Code: "BIENVENIDA10", Type: model.CouponPercentage, Value: 10, StartDate: now, EndDate: now.Add(30 * day), UsageLimit: 100, UsedCount: 25, MinOrder: 50},
			{Code: "ENVIOGRATIS", Type: model.CouponFixed, Value: 25, StartDate: now, EndDate: now.Add(15 * day), UsageLimit: 50, UsedCount: 12, MinOrder: 100},
		},
		Banners: []model.Banner{
			{ID: "1", Title: "¡Oferta Especial!", Description: "Envío gratis en compras superiores a $100", StartDate: now, EndDate: now.Add(7 * day)},
		},
		Notifications: []model.Notification{
			{ID: "1", Title: "¡Bienvenido a SuperGo!", Message: "Disfruta de envío gratis en tu primera compra", Date: now, Type: model.NotificationWelcome},
			{ID: "2", Title: "Oferta Especial", Message: "10% de descuento en productos seleccionados", Date: now.Add(-2 * time.Hour), Type: model.NotificationPromotion},
		},
	}
}
