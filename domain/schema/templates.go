package schema

import "datacraft/domain/core"

// Template is a named, preset schema offered as a quick starting point.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Columns     []Column `json:"columns"`
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

var builtinTemplates = []Template{
	{
		ID:          "employees",
		Name:        "Employee Records",
		Description: "HR-style roster with departments, titles and salaries",
		Icon:        "briefcase",
		Columns: []Column{
			{ID: "1", Name: "Full Name", Type: TypeName},
			{ID: "2", Name: "Email", Type: TypeEmail},
			{ID: "3", Name: "Department", Type: TypeDepartment},
			{ID: "4", Name: "Job Title", Type: TypeJobTitle},
			{ID: "5", Name: "Salary", Type: TypeCurrency, Options: &Options{Min: fp(30000), Max: fp(150000)}},
			{ID: "6", Name: "Hire Date", Type: TypeDate},
		},
	},
	{
		ID:          "students",
		Name:        "Student Roster",
		Description: "Students with ages, grade point averages and enrollment dates",
		Icon:        "graduation-cap",
		Columns: []Column{
			{ID: "1", Name: "Student Name", Type: TypeName},
			{ID: "2", Name: "Email", Type: TypeEmail},
			{ID: "3", Name: "Age", Type: TypeInteger, Options: &Options{Min: fp(18), Max: fp(30)}},
			{ID: "4", Name: "GPA", Type: TypeFloat, Options: &Options{Min: fp(2), Max: fp(4), Decimals: ip(2)}},
			{ID: "5", Name: "Enrollment Date", Type: TypeDate},
		},
	},
	{
		ID:          "orders",
		Name:        "E-commerce Orders",
		Description: "Order records with products, quantities and totals",
		Icon:        "shopping-cart",
		Columns: []Column{
			{ID: "1", Name: "Order ID", Type: TypeUUID},
			{ID: "2", Name: "Customer", Type: TypeName},
			{ID: "3", Name: "Product", Type: TypeCustom, Options: &Options{
				Values: []string{"Laptop", "Monitor", "Keyboard", "Mouse", "Headset", "Webcam", "Dock"},
			}},
			{ID: "4", Name: "Quantity", Type: TypeInteger, Options: &Options{Min: fp(1), Max: fp(10)}},
			{ID: "5", Name: "Total", Type: TypeCurrency, Options: &Options{Min: fp(5), Max: fp(2500)}},
			{ID: "6", Name: "Order Date", Type: TypeDate},
		},
	},
	{
		ID:          "patients",
		Name:        "Patient Records",
		Description: "Healthcare-style records with demographics and admissions",
		Icon:        "stethoscope",
		Columns: []Column{
			{ID: "1", Name: "Patient ID", Type: TypeUUID},
			{ID: "2", Name: "Name", Type: TypeName},
			{ID: "3", Name: "Age", Type: TypeInteger, Options: &Options{Min: fp(1), Max: fp(95)}},
			{ID: "4", Name: "Blood Type", Type: TypeCustom, Options: &Options{
				Values: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
			}},
			{ID: "5", Name: "City", Type: TypeCity},
			{ID: "6", Name: "Admission Date", Type: TypeDate},
		},
	},
	{
		ID:          "sales",
		Name:        "Sales Pipeline",
		Description: "Deals with regions, revenue and close outcomes",
		Icon:        "chart-bar",
		Columns: []Column{
			{ID: "1", Name: "Sales Rep", Type: TypeName},
			{ID: "2", Name: "Company", Type: TypeCompany},
			{ID: "3", Name: "Region", Type: TypeCustom, Options: &Options{
				Values: []string{"North", "South", "East", "West", "EMEA", "APAC"},
			}},
			{ID: "4", Name: "Units", Type: TypeInteger, Options: &Options{Min: fp(1), Max: fp(500)}},
			{ID: "5", Name: "Revenue", Type: TypeCurrency, Options: &Options{Min: fp(100), Max: fp(50000)}},
			{ID: "6", Name: "Closed", Type: TypeBoolean},
			{ID: "7", Name: "Close Date", Type: TypeDate},
		},
	},
}

// Templates returns the built-in template registry in display order.
func Templates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// TemplateByID looks up a built-in template.
func TemplateByID(id string) (Template, error) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, core.NewNotFoundError("template", id)
}
