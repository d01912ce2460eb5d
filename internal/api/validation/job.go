package validation

import (
	"github.com/go-playground/validator/v10"

	"jobtrack-utils/pkg/models"
	"jobtrack-utils/pkg/utils"
)

// ValidateJobStatus validates that a status value is one of the tracked
// application statuses
func ValidateJobStatus(fl validator.FieldLevel) bool {
	return utils.Contains(models.ValidStatuses, fl.Field().String())
}

// RegisterJobValidators registers all job-related custom validators
func RegisterJobValidators(v *validator.Validate) {
	v.RegisterValidation("job_status", ValidateJobStatus)
}
