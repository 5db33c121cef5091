package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_reservations")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// openDialector picks the persistence adapter from DB_DRIVER. The rest of
// the codebase only ever sees the *gorm.DB handle.
func openDialector() (gorm.Dialector, error) {
	driver := strings.ToLower(utils.EnvOrDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(utils.EnvOrDefault("SQLITE_PATH", "hotel_reservation.db")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", driver)
	}
}

// ConnectDatabase opens the configured store, migrates the schema and seeds
// demo data. The unique indexes created here (guests.email, guests.phone,
// (hotel_id, room_number)) are what backs conflict detection under
// concurrent requests.
func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	// Parent tables before children.
	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase inserts a small demo data set when the hotels table is empty.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		return
	}

	hotels := []models.Hotel{
		{
			Name:        "Grand Plaza",
			Address:     "1 Plaza Square",
			City:        "Amsterdam",
			Country:     "Netherlands",
			Phone:       "+31-20-555-0100",
			Email:       "stay@grandplaza.example",
			Stars:       5,
			Description: "City-centre flagship",
		},
		{
			Name:        "Harbor View Inn",
			Address:     "42 Quay Street",
			City:        "Rotterdam",
			Country:     "Netherlands",
			Phone:       "+31-10-555-0180",
			Email:       "front@harborview.example",
			Stars:       3,
			Description: "Small inn by the port",
		},
	}
	if err := DB.Create(&hotels).Error; err != nil {
		log.Printf("warning: failed to seed hotels: %v", err)
		return
	}

	rooms := []models.Room{
		{HotelID: hotels[0].ID, RoomNumber: "101", RoomType: "Standard", PricePerNight: 120, Capacity: 2, Amenities: "WiFi, TV", IsAvailable: true},
		{HotelID: hotels[0].ID, RoomNumber: "102", RoomType: "Deluxe", PricePerNight: 180, Capacity: 3, Amenities: "WiFi, TV, Minibar", IsAvailable: true},
		{HotelID: hotels[0].ID, RoomNumber: "201", RoomType: "Suite", PricePerNight: 320, Capacity: 4, Amenities: "WiFi, TV, Minibar, Balcony", IsAvailable: true},
		{HotelID: hotels[1].ID, RoomNumber: "1", RoomType: "Standard", PricePerNight: 75, Capacity: 2, Amenities: "WiFi", IsAvailable: true},
		{HotelID: hotels[1].ID, RoomNumber: "2", RoomType: "Family", PricePerNight: 110, Capacity: 5, Amenities: "WiFi, Kitchenette", IsAvailable: true},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}

	log.Println("Demo hotels and rooms seeded")
}
