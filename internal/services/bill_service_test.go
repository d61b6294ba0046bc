package services

import (
	"testing"

	"billtracker/internal/models"
	"billtracker/internal/testutil"
)

func TestCreateBill(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		bill, err := svc.CreateBill("Cafe X", models.BillCategoryFood, "2024-03-01", 250.00, "/uploads/abc.jpg")
		testutil.AssertNoError(t, err)

		if bill.ID == 0 {
			t.Fatal("expected non-zero bill ID")
		}
		if bill.Vendor != "Cafe X" {
			t.Errorf("expected vendor Cafe X, got %s", bill.Vendor)
		}
		if bill.Category != models.BillCategoryFood {
			t.Errorf("expected category food, got %s", bill.Category)
		}
		if bill.Amount != 250.00 {
			t.Errorf("expected amount 250.00, got %f", bill.Amount)
		}
		if bill.ImagePath != "/uploads/abc.jpg" {
			t.Errorf("expected image path carried through, got %s", bill.ImagePath)
		}
	})

	t.Run("zero_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		_, err := svc.CreateBill("Cafe X", models.BillCategoryFood, "2024-03-01", 0, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		assertBillCount(t, svc, 0)
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		_, err := svc.CreateBill("Cafe X", models.BillCategoryFood, "2024-03-01", -12.50, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		assertBillCount(t, svc, 0)
	})

	t.Run("empty_vendor_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		_, err := svc.CreateBill("", models.BillCategoryFood, "2024-03-01", 10, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_category_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		_, err := svc.CreateBill("Cafe X", models.BillCategory("groceries"), "2024-03-01", 10, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("malformed_date_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		for _, date := range []string{"03/01/2024", "2024-13-01", "2024-02-30", "yesterday", ""} {
			_, err := svc.CreateBill("Cafe X", models.BillCategoryFood, date, 10, "")
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("unique_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		seen := map[uint]bool{}
		for i := 0; i < 5; i++ {
			bill, err := svc.CreateBill("Vendor", models.BillCategoryOther, "2024-03-01", 1, "")
			testutil.AssertNoError(t, err)
			if seen[bill.ID] {
				t.Fatalf("duplicate bill ID %d", bill.ID)
			}
			seen[bill.ID] = true
		}
	})
}

func TestListBills(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		bills, err := svc.ListBills()
		testutil.AssertNoError(t, err)
		if len(bills) != 0 {
			t.Errorf("expected no bills, got %d", len(bills))
		}
	})

	t.Run("ordered_by_date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		testutil.CreateTestBill(t, db, models.BillCategoryFood, "2024-01-15", 10)
		testutil.CreateTestBill(t, db, models.BillCategoryTravel, "2024-03-01", 20)
		testutil.CreateTestBill(t, db, models.BillCategoryShopping, "2024-02-10", 30)

		bills, err := svc.ListBills()
		testutil.AssertNoError(t, err)

		if len(bills) != 3 {
			t.Fatalf("expected 3 bills, got %d", len(bills))
		}
		wantDates := []string{"2024-03-01", "2024-02-10", "2024-01-15"}
		for i, want := range wantDates {
			if bills[i].Date != want {
				t.Errorf("position %d: expected date %s, got %s", i, want, bills[i].Date)
			}
		}
	})

	t.Run("includes_created_bill", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		created, err := svc.CreateBill("Cafe X", models.BillCategoryFood, "2024-03-01", 250.00, "/uploads/abc.jpg")
		testutil.AssertNoError(t, err)

		bills, err := svc.ListBills()
		testutil.AssertNoError(t, err)

		found := 0
		for _, b := range bills {
			if b.ID == created.ID {
				found++
				if b.Vendor != "Cafe X" || b.Amount != 250.00 || b.Date != "2024-03-01" {
					t.Errorf("stored bill differs from created: %+v", b)
				}
			}
		}
		if found != 1 {
			t.Errorf("expected created bill to appear exactly once, found %d", found)
		}
	})
}

func TestDeleteBill(t *testing.T) {
	t.Run("removes_bill", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		bill := testutil.CreateTestBill(t, db, models.BillCategoryFood, "2024-03-01", 10)

		err := svc.DeleteBill(bill.ID)
		testutil.AssertNoError(t, err)

		bills, err := svc.ListBills()
		testutil.AssertNoError(t, err)
		for _, b := range bills {
			if b.ID == bill.ID {
				t.Errorf("deleted bill %d still listed", bill.ID)
			}
		}
	})

	t.Run("second_delete_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		bill := testutil.CreateTestBill(t, db, models.BillCategoryFood, "2024-03-01", 10)

		testutil.AssertNoError(t, svc.DeleteBill(bill.ID))
		testutil.AssertAppError(t, svc.DeleteBill(bill.ID), "BILL_NOT_FOUND")
	})

	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)

		testutil.AssertAppError(t, svc.DeleteBill(99999), "BILL_NOT_FOUND")
	})
}

func assertBillCount(t *testing.T, svc BillServicer, want int) {
	t.Helper()
	bills, err := svc.ListBills()
	testutil.AssertNoError(t, err)
	if len(bills) != want {
		t.Errorf("expected %d bills persisted, got %d", want, len(bills))
	}
}
