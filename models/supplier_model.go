package models

import "time"

const (
	LogisticsAttached    = "attached-to-goods"
	LogisticsIndependent = "independent"
)

type Supplier struct {
	ID                       uint       `json:"id" gorm:"primaryKey"`
	CompanyName              string     `json:"company_name" gorm:"uniqueIndex;not null"`
	ContactPerson            string     `json:"contact_person" gorm:"not null"`
	ContactPhone             string     `json:"contact_phone"`
	ContractStartDate        *time.Time `json:"contract_start_date" gorm:"type:date"`
	ContractEndDate          *time.Time `json:"contract_end_date" gorm:"type:date"`
	LogisticsType            string     `json:"logistics_type" gorm:"size:30;default:attached-to-goods"`
	ContractFilePath         string     `json:"contract_file_path"`
	ContractFileOriginalName string     `json:"contract_file_original_name"`
	ContractFileSize         int64      `json:"contract_file_size"`
	ContractFileUploadTime   *time.Time `json:"contract_file_upload_time"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}
