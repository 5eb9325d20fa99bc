package usecase

import (
	"context"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/pkg/media"

	"github.com/google/uuid"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findAllFn     func(ctx context.Context, limit, offset int) ([]*entity.User, error)
	countAllFn    func(ctx context.Context) (int64, error)
	countByRoleFn func(ctx context.Context, role entity.UserRole) (int64, error)
	updStatusFn   func(ctx context.Context, id uuid.UUID, active bool) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return m.findAllFn(ctx, limit, offset)
}
func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	return m.countAllFn(ctx)
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return m.countByRoleFn(ctx, role)
}
func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, active bool) error {
	return m.updStatusFn(ctx, id, active)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// --- Mock PropertyRepository ---

type mockPropertyRepo struct {
	createFn         func(ctx context.Context, property *entity.Property) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	findByIDOwnerFn  func(ctx context.Context, id, ownerID uuid.UUID) (*entity.Property, error)
	findPublicFn     func(ctx context.Context) ([]*entity.Property, error)
	findByOwnerFn    func(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	findAllFn        func(ctx context.Context, limit, offset int) ([]*entity.Property, error)
	findByApprovalFn func(ctx context.Context, approved bool) ([]*entity.Property, error)
	countAllFn       func(ctx context.Context) (int64, error)
	updateFn         func(ctx context.Context, property *entity.Property) error
	updApprovalFn    func(ctx context.Context, id uuid.UUID, approved bool, reason *string) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	return m.createFn(ctx, property)
}
func (m *mockPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockPropertyRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Property, error) {
	return m.findByIDOwnerFn(ctx, id, ownerID)
}
func (m *mockPropertyRepo) FindPublic(ctx context.Context) ([]*entity.Property, error) {
	return m.findPublicFn(ctx)
}
func (m *mockPropertyRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockPropertyRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Property, error) {
	return m.findAllFn(ctx, limit, offset)
}
func (m *mockPropertyRepo) FindByApproval(ctx context.Context, approved bool) ([]*entity.Property, error) {
	return m.findByApprovalFn(ctx, approved)
}
func (m *mockPropertyRepo) CountAll(ctx context.Context) (int64, error) {
	return m.countAllFn(ctx)
}
func (m *mockPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	return m.updateFn(ctx, property)
}
func (m *mockPropertyRepo) UpdateApproval(ctx context.Context, id uuid.UUID, approved bool, reason *string) error {
	return m.updApprovalFn(ctx, id, approved, reason)
}
func (m *mockPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn             func(ctx context.Context, booking *entity.Booking) error
	findByIDOwnerFn      func(ctx context.Context, id, ownerID uuid.UUID) (*entity.Booking, error)
	findByIDClientFn     func(ctx context.Context, id, clientID uuid.UUID) (*entity.Booking, error)
	findForParticipantFn func(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error)
	findByOwnerFn        func(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error)
	findByClientFn       func(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error)
	findAllFn            func(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	countAllFn           func(ctx context.Context) (int64, error)
	countByStatusFn      func(ctx context.Context, status entity.BookingStatus) (int64, error)
	updateStatusIfFn     func(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Booking, error) {
	return m.findByIDOwnerFn(ctx, id, ownerID)
}
func (m *mockBookingRepo) FindByIDAndClient(ctx context.Context, id, clientID uuid.UUID) (*entity.Booking, error) {
	return m.findByIDClientFn(ctx, id, clientID)
}
func (m *mockBookingRepo) FindByIDForParticipant(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	return m.findForParticipantFn(ctx, id, userID)
}
func (m *mockBookingRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockBookingRepo) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error) {
	return m.findByClientFn(ctx, clientID)
}
func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return m.findAllFn(ctx, limit, offset)
}
func (m *mockBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return m.countAllFn(ctx)
}
func (m *mockBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	return m.countByStatusFn(ctx, status)
}
func (m *mockBookingRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	return m.updateStatusIfFn(ctx, id, from, to)
}

// --- Mock media uploader ---

type mockUploader struct {
	uploadFn func(ctx context.Context, file media.File) (string, error)
}

func (m *mockUploader) Upload(ctx context.Context, file media.File) (string, error) {
	return m.uploadFn(ctx, file)
}

func newTestRepository(user *mockUserRepo, property *mockPropertyRepo, booking *mockBookingRepo) *repository.Repository {
	return &repository.Repository{
		User:     user,
		Property: property,
		Booking:  booking,
	}
}
