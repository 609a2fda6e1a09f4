package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

func (s *AssetServiceImpl) Assign(ctx context.Context, req asset.AssignAssetRequest) (asset.AssetAssignment, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetAssignment{}, err
	}

	assignedDate := date.MustParse(req.AssignedDate)
	var expectedReturn *date.Date
	if req.ExpectedReturnDate != nil && !validator.IsEmpty(*req.ExpectedReturnDate) {
		expectedReturn = date.Ptr(date.MustParse(*req.ExpectedReturnDate))
	}

	var created asset.AssetAssignment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := s.assets.GetByIDForUpdate(ctx, req.AssetID)
		if err != nil {
			return fmt.Errorf("failed to get asset by ID: %w", err)
		}
		if a.Status != asset.StatusAvailable {
			return asset.ErrAssetNotAvailable
		}

		reviewer, err := s.employees.GetByID(ctx, req.AssignedBy)
		if err != nil {
			return fmt.Errorf("failed to get assigning employee: %w", err)
		}

		assignment := asset.AssetAssignment{
			AssetID:            a.ID,
			AssetCode:          a.AssetCode,
			AssetName:          a.Name,
			AssignmentType:     req.Target(),
			AssignedDate:       assignedDate,
			AssignedBy:         reviewer.ID,
			AssignedByName:     reviewer.Name,
			Status:             asset.AssignmentActive,
			Notes:              strings.TrimSpace(req.Notes),
			ExpectedReturnDate: expectedReturn,
		}

		if req.Target() == asset.AssignToEmployee {
			holder, err := s.employees.GetByID(ctx, *req.EmployeeID)
			if err != nil {
				return fmt.Errorf("failed to get employee: %w", err)
			}
			if !holder.IsActive() {
				return employee.ErrEmployeeInactive
			}
			assignment.EmployeeID = &holder.ID
			assignment.EmployeeName = &holder.Name
			assignment.Department = holder.Department
		} else {
			assignment.Department = strings.TrimSpace(req.Department)
		}

		created, err = s.assignments.Create(ctx, assignment)
		if err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		a.Status = asset.StatusAssigned
		a.AssignedTo = created.Holder()
		if err := s.assets.Update(ctx, a); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return asset.AssetAssignment{}, err
	}

	slog.Info("Asset assigned", "asset_id", created.AssetID, "assignment_id", created.ID, "type", created.AssignmentType)
	s.events.Publish(sse.Event{Topic: sse.TopicAsset, Event: "asset.assigned", Data: created})
	return created, nil
}

func (s *AssetServiceImpl) Return(ctx context.Context, req asset.ReturnAssetRequest) (asset.AssetAssignment, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetAssignment{}, err
	}

	returnDate := date.MustParse(req.ReturnDate)
	condition := asset.Condition(req.Condition)

	current, err := s.assignments.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return asset.AssetAssignment{}, fmt.Errorf("failed to get assignment by ID: %w", err)
	}

	var returned asset.AssetAssignment
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := s.assets.GetByIDForUpdate(ctx, current.AssetID)
		if err != nil {
			return fmt.Errorf("failed to get asset by ID: %w", err)
		}
		returned, err = s.assignments.GetByIDForUpdate(ctx, req.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment by ID: %w", err)
		}
		if returned.Status != asset.AssignmentActive {
			return asset.ErrAssignmentNotActive
		}
		if returnDate.Before(returned.AssignedDate) {
			return validator.ValidationErrors{{Field: "return_date", Message: "return_date must be on or after assigned_date"}}
		}

		returned.Status = asset.AssignmentReturned
		returned.ReturnDate = &returnDate
		returned.ReturnCondition = &condition
		returned.ReturnNotes = optional(strings.TrimSpace(req.Notes))
		if err := s.assignments.Update(ctx, returned); err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}

		a.Status = asset.StatusAvailable
		a.AssignedTo = nil
		a.Condition = condition
		if err := s.assets.Update(ctx, a); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return asset.AssetAssignment{}, err
	}

	slog.Info("Asset returned", "asset_id", returned.AssetID, "assignment_id", returned.ID, "condition", condition)
	s.events.Publish(sse.Event{Topic: sse.TopicAsset, Event: "asset.returned", Data: returned})
	return returned, nil
}
