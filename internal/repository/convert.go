package repository

import (
	"github.com/licagency/policy-tracker/gen/ent"
	"github.com/licagency/policy-tracker/internal/entity"
)

func toCustomer(row *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:               row.ID,
		Name:             row.Name,
		Phone:            row.Phone,
		Email:            row.Email,
		Address:          row.Address,
		ExtractionMethod: row.ExtractionMethod,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toPolicy(row *ent.InsurancePolicy) *entity.Policy {
	return &entity.Policy{
		PolicyNumber:       row.PolicyNumber,
		CustomerID:         row.CustomerID,
		AgentCode:          row.AgentCode,
		PlanName:           row.PlanName,
		DateOfCommencement: row.DateOfCommencement,
		PaymentPeriod:      row.PaymentPeriod,
		CurrentFUPDate:     row.CurrentFupDate,
		PremiumAmount:      row.PremiumAmount,
		SumAssured:         row.SumAssured,
		Status:             row.Status,
		ExtractionMethod:   row.ExtractionMethod,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func toDocument(row *ent.IngestedDocument) *entity.IngestedDocument {
	return &entity.IngestedDocument{
		ID:            row.ID,
		FileName:      row.FileName,
		FilePath:      row.FilePath,
		DocumentType:  row.DocumentType,
		ContentHash:   row.ContentHash,
		DocumentDate:  row.DocumentDate,
		PolicyNumbers: row.PolicyNumbers,
	}
}
