package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewatch/platewatch/internal/dto"
	"github.com/platewatch/platewatch/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingPlate  = errors.New("missing plate")
	ErrPlateNotFound = errors.New("plate not found")
	ErrPlateConflict = errors.New("plate was registered by a concurrent request")
)

type PlateService struct {
	db *gorm.DB
}

func NewPlateService(db *gorm.DB) *PlateService {
	return &PlateService{db: db}
}

// NormalizePlate is the canonical plate key: trimmed and upper-cased.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// CheckPlate resolves a plate's current status and records the check. The
// lazy plate creation, status lookup, history row and scan row are one
// transaction; a lost unique-constraint race on the plate text rolls the
// whole call back and surfaces as ErrPlateConflict.
func (s *PlateService) CheckPlate(userID uuid.UUID, req *dto.CheckPlateRequest) (*dto.CheckPlateResponse, error) {
	normalized := NormalizePlate(req.Plate)
	if normalized == "" {
		return nil, ErrMissingPlate
	}

	var resp *dto.CheckPlateResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		statusText := models.StatusNormal

		var plate models.Plate
		err := tx.Where("plate = ?", normalized).First(&plate).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			plate = models.Plate{ID: uuid.New(), Plate: normalized, ExistsInSystem: false}
			if err := tx.Create(&plate).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			var last models.PlateStatus
			err := tx.Where("plate_id = ?", plate.ID).Order("reported_at DESC").First(&last).Error
			if err == nil {
				statusText = last.Status
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		now := time.Now().UTC()

		history := models.CheckHistory{
			ID:        uuid.New(),
			Plate:     normalized,
			UserID:    userID,
			Status:    statusText,
			CheckedAt: now,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		// Scan attempts are logged unconditionally, even with empty raw_text.
		plateID := plate.ID
		scan := models.PlateScan{
			ID:         uuid.New(),
			PlateID:    &plateID,
			RawText:    req.RawText,
			Confidence: req.Confidence,
			ImagePath:  req.ImagePath,
			ScannedBy:  userID,
			ScannedAt:  now,
		}
		if err := tx.Create(&scan).Error; err != nil {
			return err
		}

		resp = &dto.CheckPlateResponse{Plate: plate.Plate, Status: statusText}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlateConflict
		}
		return nil, err
	}

	return resp, nil
}

// SetStatus appends a new status row for the plate. Prior rows are never
// updated or deleted; the current status is always derived by latest
// reported_at.
func (s *PlateService) SetStatus(plateID, reportedBy uuid.UUID, req *dto.SetPlateStatusRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plate models.Plate
		if err := tx.First(&plate, "id = ?", plateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlateNotFound
			}
			return err
		}

		status := models.PlateStatus{
			ID:         uuid.New(),
			PlateID:    plate.ID,
			Status:     req.Status,
			Reason:     req.Reason,
			ReportedBy: reportedBy,
			ReportedAt: time.Now().UTC(),
		}
		return tx.Create(&status).Error
	})
}

// HistoryFor returns check history newest first: every row for admins, only
// the caller's own rows otherwise.
func (s *PlateService) HistoryFor(user *models.User) ([]models.CheckHistory, error) {
	rows := make([]models.CheckHistory, 0)
	query := s.db.Order("checked_at DESC")
	if user.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", user.ID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
