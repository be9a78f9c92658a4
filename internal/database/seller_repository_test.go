package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/roster/internal/models"
)

func TestSellerInsert_FindByDepartment(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)
	ctx := context.Background()

	books := createTestDepartment(t, deps, "Books")
	ann := &models.Seller{
		Name:       "Ann",
		Email:      "ann@x.io",
		BirthDate:  models.NewDate(1990, time.January, 1),
		BaseSalary: 3000,
	}
	ann.AssignDepartment(books)

	if err := repo.Insert(ctx, ann); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if ann.ID == nil || *ann.ID <= 0 {
		t.Fatalf("Expected positive id, got %v", ann.ID)
	}

	list, err := repo.FindByDepartment(ctx, *books.ID)
	if err != nil {
		t.Fatalf("FindByDepartment failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 seller, got %d", len(list))
	}

	got := list[0]
	if *got.ID != *ann.ID || got.Name != "Ann" || got.Email != "ann@x.io" {
		t.Errorf("Unexpected seller: %+v", got)
	}
	if got.BirthDate != ann.BirthDate {
		t.Errorf("Expected birth date %v, got %v", ann.BirthDate, got.BirthDate)
	}
	if got.BaseSalary != 3000 {
		t.Errorf("Expected salary 3000, got %v", got.BaseSalary)
	}
	if got.Department == nil || *got.Department.ID != *books.ID || got.Department.Name != "Books" {
		t.Errorf("Expected hydrated Books department, got %+v", got.Department)
	}
}

func TestSellerInsert_UnknownDepartment(t *testing.T) {
	m := setupTestManager(t)
	repo := NewSellerRepo(m)

	s := &models.Seller{
		Name:         "Bob",
		Email:        "bob@x.io",
		BirthDate:    models.NewDate(1985, time.March, 3),
		BaseSalary:   1200,
		DepartmentID: 77,
	}
	err := repo.Insert(context.Background(), s)

	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("Expected StoreError, got %v", err)
	}
	if s.ID != nil {
		t.Errorf("Failed insert must not assign an id, got %d", *s.ID)
	}
	if n := countRows(t, m, "seller"); n != 0 {
		t.Errorf("Expected no sellers after rollback, got %d", n)
	}
}

func TestSellerUpdate(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)
	ctx := context.Background()

	books := createTestDepartment(t, deps, "Books")
	toys := createTestDepartment(t, deps, "Toys")
	s := createTestSeller(t, repo, "Ann", books)

	s.Name = "Ann Marie"
	s.BaseSalary = 4500.5
	s.AssignDepartment(toys)
	if err := repo.Update(ctx, s); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, *s.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != "Ann Marie" || found.BaseSalary != 4500.5 {
		t.Errorf("Unexpected seller after update: %+v", found)
	}
	if found.DepartmentID != *toys.ID || found.Department.Name != "Toys" {
		t.Errorf("Expected department Toys, got %d/%+v", found.DepartmentID, found.Department)
	}
}

func TestSellerUpdate_MissingRow(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)

	books := createTestDepartment(t, deps, "Books")
	s := &models.Seller{
		ID:         models.IntPtr(500),
		Name:       "Nobody",
		Email:      "n@x.io",
		BirthDate:  models.NewDate(2000, time.June, 1),
		BaseSalary: 1,
	}
	s.AssignDepartment(books)

	err := repo.Update(context.Background(), s)
	if !errors.Is(err, ErrNoRowsAffected) {
		t.Errorf("Expected ErrNoRowsAffected, got %v", err)
	}
}

func TestSellerDelete(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)
	ctx := context.Background()

	books := createTestDepartment(t, deps, "Books")
	s := createTestSeller(t, repo, "Ann", books)

	if err := repo.DeleteByID(ctx, *s.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	found, err := repo.FindByID(ctx, *s.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found != nil {
		t.Errorf("Expected seller gone, got %+v", found)
	}

	// department can go once nothing references it
	if err := deps.DeleteByID(ctx, *books.ID); err != nil {
		t.Errorf("Expected department delete to succeed, got %v", err)
	}
}

func TestSellerFindAll_OrderAndSharedDepartment(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)

	books := createTestDepartment(t, deps, "Books")
	toys := createTestDepartment(t, deps, "Toys")
	createTestSeller(t, repo, "carl", books)
	createTestSeller(t, repo, "Alex", toys)
	createTestSeller(t, repo, "Beth", books)

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	want := []string{"Alex", "Beth", "carl"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d sellers, got %d", len(want), len(all))
	}
	for i, s := range all {
		if s.Name != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], s.Name)
		}
	}

	// Beth and carl both work in Books and share one Department value
	if all[1].Department != all[2].Department {
		t.Error("Sellers of the same department should share one Department value")
	}
	if all[0].Department == all[1].Department {
		t.Error("Sellers of different departments should not share a Department value")
	}
}

func TestSellerFindByDepartment_Filters(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)

	books := createTestDepartment(t, deps, "Books")
	toys := createTestDepartment(t, deps, "Toys")
	createTestSeller(t, repo, "Ann", books)
	createTestSeller(t, repo, "Bob", toys)

	list, err := repo.FindByDepartment(context.Background(), *toys.ID)
	if err != nil {
		t.Fatalf("FindByDepartment failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Bob" {
		t.Errorf("Expected only Bob, got %+v", list)
	}

	none, err := repo.FindByDepartment(context.Background(), 999)
	if err != nil {
		t.Fatalf("FindByDepartment failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no sellers, got %d", len(none))
	}
}

func TestSellerRoundTrip(t *testing.T) {
	m := setupTestManager(t)
	deps := NewDepartmentRepo(m)
	repo := NewSellerRepo(m)
	ctx := context.Background()

	books := createTestDepartment(t, deps, "Books")
	s := &models.Seller{
		Name:       "Zoë Quinn",
		Email:      "zoe.quinn+sales@shop.example.com",
		BirthDate:  models.NewDate(1972, time.February, 29),
		BaseSalary: 12345.67,
	}
	s.AssignDepartment(books)
	if err := repo.Insert(ctx, s); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	found, err := repo.FindByID(ctx, *s.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if *found.ID != *s.ID || found.Name != s.Name || found.Email != s.Email ||
		found.BirthDate != s.BirthDate || found.BaseSalary != s.BaseSalary ||
		found.DepartmentID != s.DepartmentID {
		t.Errorf("Round trip mismatch:\n inserted %+v\n found    %+v", s, found)
	}
}
