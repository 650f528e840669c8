package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"staffhub/models"

	"github.com/google/uuid"
)

// In-memory implementations backing the handler tests. They enforce the
// same unique-field guarantees as the real stores, under a lock, so the
// contract being tested matches what Mongo/Postgres provide.

type MemoryUserRepo struct {
	mu    sync.Mutex
	users []*models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicateKey
		}
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, user)
	return nil
}

func (r *MemoryUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryEmployeeRepo struct {
	mu        sync.Mutex
	employees []*models.Employee
}

func NewMemoryEmployeeRepo() *MemoryEmployeeRepo {
	return &MemoryEmployeeRepo{}
}

func (r *MemoryEmployeeRepo) Create(_ context.Context, emp *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.Email == emp.Email {
			return ErrDuplicateKey
		}
	}

	now := time.Now().UTC()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees = append(r.employees, emp)
	return nil
}

func (r *MemoryEmployeeRepo) FindByID(_ context.Context, id string) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryEmployeeRepo) FindAll(_ context.Context) ([]*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := []*models.Employee{}
	list = append(list, r.employees...)
	return list, nil
}

func (r *MemoryEmployeeRepo) Search(_ context.Context, department, position string) ([]*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := []*models.Employee{}
	for _, e := range r.employees {
		if department != "" && !strings.Contains(strings.ToLower(e.Department), strings.ToLower(department)) {
			continue
		}
		if position != "" && !strings.Contains(strings.ToLower(e.Position), strings.ToLower(position)) {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

func (r *MemoryEmployeeRepo) UpdateByID(_ context.Context, id string, fields map[string]interface{}) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.ID != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "first_name":
				e.FirstName = value.(string)
			case "last_name":
				e.LastName = value.(string)
			case "email":
				e.Email = value.(string)
			case "position":
				e.Position = value.(string)
			case "department":
				e.Department = value.(string)
			case "salary":
				salary := value.(float64)
				e.Salary = &salary
			case "date_of_joining":
				date := value.(time.Time)
				e.DateOfJoining = &date
			case "profile_image":
				image := value.(string)
				e.ProfileImage = &image
			}
		}
		e.UpdatedAt = time.Now().UTC()
		return e, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryEmployeeRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.employees {
		if e.ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
