package models

// Setting is a single key/value pair of the "settings" table.
// Writing an existing key replaces its value; no history is kept.
type Setting struct {
	Key   string `json:"key" validate:"required,max=255"`
	Value string `json:"value"`
}

// TableName returns the name of the database table
// associated with the Setting model.
func (s Setting) TableName() string {
	return "settings"
}
