// Seed de datos iniciales: cuenta del panel, unidades, categorías,
// restaurantes y productos de ejemplo. Es idempotente: lo que ya existe por
// nombre se salta.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

func main() {
	email := flag.String("email", "admin@compras.local", "email de la cuenta del panel")
	password := flag.String("password", "cambiame123", "password inicial de la cuenta")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Cuenta del panel
	owner, err := userRepo.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar cuenta")
	}
	if owner == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		owner = &entity.User{
			ID:           uuid.New().String(),
			Email:        *email,
			Name:         "Administración",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			log.Fatal().Err(err).Msg("crear cuenta")
		}
		log.Info().Str("email", *email).Msg("cuenta creada")
	}

	// Unidades. Soles es la unidad monetaria: la cantidad del ítem ES el importe.
	units := []entity.Unit{
		{Name: "Soles", Kind: entity.UnitKindCurrency, Symbol: "S/", IsCurrency: true},
		{Name: "Kilogramo", Kind: entity.UnitKindMass, Symbol: "kg"},
		{Name: "Gramo", Kind: entity.UnitKindMass, Symbol: "g"},
		{Name: "Unidad", Kind: entity.UnitKindCount, Symbol: "uni"},
		{Name: "Litro", Kind: entity.UnitKindOther, Symbol: "L"},
		{Name: "Paquete", Kind: entity.UnitKindPackage, Symbol: "paq"},
		{Name: "Caja", Kind: entity.UnitKindPackage, Symbol: "caja"},
	}
	unitIDs := map[string]string{}
	for _, u := range units {
		existing, err := unitRepo.GetByName(ctx, owner.ID, u.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar unidad")
		}
		if existing != nil {
			unitIDs[u.Name] = existing.ID
			continue
		}
		u.ID = uuid.New().String()
		u.OwnerID = owner.ID
		u.CreatedAt = time.Now()
		if err := unitRepo.Create(ctx, &u); err != nil {
			log.Fatal().Err(err).Str("unidad", u.Name).Msg("crear unidad")
		}
		unitIDs[u.Name] = u.ID
	}
	log.Info().Int("total", len(units)).Msg("unidades listas")

	// Categorías
	categories := []string{"Verduras", "Frutas", "Carnes", "Abarrotes", "Bebidas", "Limpieza", "Otros"}
	categoryIDs := map[string]string{}
	for _, name := range categories {
		existing, err := categoryRepo.GetByName(ctx, owner.ID, name)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar categoría")
		}
		if existing != nil {
			categoryIDs[name] = existing.ID
			continue
		}
		c := entity.Category{ID: uuid.New().String(), OwnerID: owner.ID, Name: name, CreatedAt: time.Now()}
		if err := categoryRepo.Create(ctx, &c); err != nil {
			log.Fatal().Err(err).Str("categoría", name).Msg("crear categoría")
		}
		categoryIDs[name] = c.ID
	}
	log.Info().Int("total", len(categories)).Msg("categorías listas")

	// Restaurantes. El código corto entra en el correlativo de series.
	restaurants := []entity.Restaurant{
		{Name: "La Alpaca", Code: "ALP", Address: "Av. Principal 123", Contact: "999-111-222"},
		{Name: "Milagritos", Code: "MIL", Address: "Jr. Comercio 456", Contact: "999-333-444"},
	}
	for _, re := range restaurants {
		existing, err := restaurantRepo.GetByCode(ctx, owner.ID, re.Code)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar restaurante")
		}
		if existing != nil {
			continue
		}
		re.ID = uuid.New().String()
		re.OwnerID = owner.ID
		re.CreatedAt = time.Now()
		if err := restaurantRepo.Create(ctx, &re); err != nil {
			log.Fatal().Err(err).Str("restaurante", re.Name).Msg("crear restaurante")
		}
	}
	log.Info().Int("total", len(restaurants)).Msg("restaurantes listos")

	// Productos de ejemplo
	type seedProduct struct {
		name     string
		category string
		unit     string
		refPrice string
	}
	products := []seedProduct{
		{"Tomate", "Verduras", "Kilogramo", "4.50"},
		{"Cebolla", "Verduras", "Kilogramo", "3.20"},
		{"Papa", "Verduras", "Kilogramo", "2.80"},
		{"Limón", "Frutas", "Kilogramo", "5.00"},
		{"Pollo", "Carnes", "Kilogramo", "9.50"},
		{"Arroz", "Abarrotes", "Kilogramo", "4.20"},
		{"Aceite", "Abarrotes", "Litro", "11.00"},
		{"Gaseosa", "Bebidas", "Unidad", "8.50"},
		{"Balón de gas", "Otros", "Soles", ""},
		{"Taxi / flete", "Otros", "Soles", ""},
	}
	created := 0
	for _, sp := range products {
		catID := categoryIDs[sp.category]
		existing, err := productRepo.GetByNameAndCategory(ctx, owner.ID, sp.name, catID)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar producto")
		}
		if existing != nil {
			continue
		}
		p := entity.Product{
			ID:            uuid.New().String(),
			OwnerID:       owner.ID,
			Name:          sp.name,
			CategoryID:    catID,
			DefaultUnitID: unitIDs[sp.unit],
			CreatedAt:     time.Now(),
		}
		if sp.refPrice != "" {
			d, err := decimal.NewFromString(sp.refPrice)
			if err != nil {
				log.Fatal().Err(err).Str("producto", sp.name).Msg("ref_price inválido")
			}
			p.RefPrice = &d
		}
		if err := productRepo.Create(ctx, &p); err != nil {
			log.Fatal().Err(err).Str("producto", sp.name).Msg("crear producto")
		}
		created++
	}
	log.Info().Int("creados", created).Msg("productos listos")
	log.Info().Msg("seed completado")
}
