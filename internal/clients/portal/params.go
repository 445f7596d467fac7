package portal

import (
	"fmt"
	"net/url"

	"github.com/jathow/careertrack/internal/entities"
)

type ApplicationFilters struct {
	Status      entities.ApplicationStatus
	CompanyName string
	DateFrom    string
	DateTo      string
}

func (f ApplicationFilters) Validate() error {

	if f.Status != "" {
		if _, err := entities.ToApplicationStatus(string(f.Status)); err != nil {
			return fmt.Errorf("invalid status filter: %v", f.Status)
		}
	}

	return nil
}

func (f ApplicationFilters) ToUrlParams() url.Values {

	params := url.Values{}

	if f.Status != "" {
		params.Add("status", string(f.Status))
	}

	if f.CompanyName != "" {
		params.Add("company", f.CompanyName)
	}

	if f.DateFrom != "" {
		params.Add("dateFrom", f.DateFrom)
	}

	if f.DateTo != "" {
		params.Add("dateTo", f.DateTo)
	}

	return params
}
