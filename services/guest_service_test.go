package services

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

func TestResolveOrCreateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	first, err := svc.ResolveOrCreate("a@x.com", "555-0001")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected a persisted guest id")
	}

	second, err := svc.ResolveOrCreate("a@x.com", "555-0001")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected guest %d to be reused, got %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Guest{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 guest record, got %d", count)
	}
}

func TestResolveOrCreateConflictSymmetry(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	if _, err := svc.ResolveOrCreate("a@x.com", "555-0001"); err != nil {
		t.Fatalf("seed resolve: %v", err)
	}

	var conflict *ConflictError

	// Same email, different phone.
	_, err := svc.ResolveOrCreate("a@x.com", "555-9999")
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict for phone mismatch, got %v", err)
	}

	// Different email, same phone.
	_, err = svc.ResolveOrCreate("b@x.com", "555-0001")
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict for reused phone, got %v", err)
	}

	var count int64
	db.Model(&models.Guest{}).Count(&count)
	if count != 1 {
		t.Fatalf("conflicting resolves must not create guests, got %d records", count)
	}
}

func TestCreateGuestRejectsExistingIdentity(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	if _, err := svc.Create(models.Guest{Email: "a@x.com", Phone: "555-0001"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var conflict *ConflictError
	if _, err := svc.Create(models.Guest{Email: "a@x.com", Phone: "555-0002"}); !errors.As(err, &conflict) {
		t.Fatalf("expected conflict for existing email, got %v", err)
	}
	if _, err := svc.Create(models.Guest{Email: "b@x.com", Phone: "555-0001"}); !errors.As(err, &conflict) {
		t.Fatalf("expected conflict for existing phone, got %v", err)
	}

	var invalid *ValidationError
	if _, err := svc.Create(models.Guest{Email: "", Phone: "555-0003"}); !errors.As(err, &invalid) {
		t.Fatalf("expected validation error for missing email, got %v", err)
	}
}

func TestResolveOrCreateRemapsInsertRaceToConflict(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	// Simulate a concurrent request winning the insert race: the lookups
	// see no guest, but a rival row lands just before the service's own
	// insert and the unique indexes reject it.
	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("rival_insert", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.Guest); !ok {
			return
		}
		raced = true
		rival := models.Guest{Email: "a@x.com", Phone: "555-0001"}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error; err != nil {
			t.Fatalf("rival insert: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	var conflict *ConflictError
	if _, err := svc.ResolveOrCreate("a@x.com", "555-0001"); !errors.As(err, &conflict) {
		t.Fatalf("expected lost insert race to surface as conflict, got %v", err)
	}
	if !raced {
		t.Fatal("rival insert never ran")
	}
}

func TestIsDuplicateKeyClassification(t *testing.T) {
	db := openTestDB(t)
	mustGuest(t, db, "a@x.com", "555-0001")

	err := db.Create(&models.Guest{Email: "a@x.com", Phone: "555-0002"}).Error
	if err == nil {
		t.Fatal("expected a duplicate key error from the driver")
	}
	if !isDuplicateKey(err) {
		t.Fatalf("driver duplicate not classified as such: %v", err)
	}

	if !isDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Fatal("MySQL error 1062 must classify as duplicate")
	}
	if isDuplicateKey(&mysql.MySQLError{Number: 1054, Message: "Unknown column"}) {
		t.Fatal("unrelated MySQL error must not classify as duplicate")
	}
	if isDuplicateKey(nil) || isDuplicateKey(errors.New("connection reset")) {
		t.Fatal("nil and unrelated errors must not classify as duplicate")
	}
}

func TestGuestLookups(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	seeded := mustGuest(t, db, "a@x.com", "555-0001")

	byEmail, err := svc.GetByEmail("a@x.com")
	if err != nil || byEmail.ID != seeded.ID {
		t.Fatalf("GetByEmail = (%v, %v), want guest %d", byEmail.ID, err, seeded.ID)
	}
	byPhone, err := svc.GetByPhone("555-0001")
	if err != nil || byPhone.ID != seeded.ID {
		t.Fatalf("GetByPhone = (%v, %v), want guest %d", byPhone.ID, err, seeded.ID)
	}

	if _, err := svc.GetByID(seeded.ID + 100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
