package variants

import (
	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/schema"
)

// StudentVariant declares {first name: string, last name: string, GPA: float64}
// and renders records as "Name: <first> <last>, GPA: <gpa>".
var StudentVariant = record.NewVariant("Student",
	schema.MustNew(
		schema.Key("first name", schema.String()),
		schema.Key("last name", schema.String()),
		schema.Key("GPA", schema.Float()),
	),
	record.WithDescription[string]("A student's name and grade point average"),
	record.WithFormatter(formatStudent),
)

func formatStudent(r *record.Record[string]) string {
	first, _ := record.Value[string](r, "first name")
	last, _ := record.Value[string](r, "last name")
	gpa, _ := r.Get("GPA")
	return "Name: " + first + " " + last + ", GPA: " + repr.Value(gpa)
}

// Profile is the struct view of a Student.
type Profile struct {
	FirstName string  `mapstructure:"first name" json:"first_name"`
	LastName  string  `mapstructure:"last name" json:"last_name"`
	GPA       float64 `mapstructure:"GPA" json:"gpa"`
}

// Student is a record holding a name and a grade point average.
type Student struct {
	*record.Record[string]
}

// NewStudent builds a Student.
func NewStudent(first, last, gpa any) (*Student, error) {
	r, err := StudentVariant.New(map[string]any{
		"first name": first,
		"last name":  last,
		"GPA":        gpa,
	})
	if err != nil {
		return nil, err
	}
	return &Student{Record: r}, nil
}

// Profile decodes the student into its struct view.
func (s *Student) Profile() (Profile, error) {
	var p Profile
	err := record.Decode(s.Record, &p)
	return p, err
}
