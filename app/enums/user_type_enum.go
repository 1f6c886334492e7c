package enums

import "database/sql/driver"

// UserType is the role a user signs up with
type UserType struct{ enumValue }

// user types
var (
	UserTypeSeeker   = UserType{enumValue{name: "seeker", value: int(userTypeSeeker)}}
	UserTypeProvider = UserType{enumValue{name: "provider", value: int(userTypeProvider)}}
)

// UserTypeValues lists all user types
var UserTypeValues = []UserType{UserTypeSeeker, UserTypeProvider}

var userTypeRaw = []enumValue{UserTypeSeeker.enumValue, UserTypeProvider.enumValue}

func (e UserType) String() string { return e.name }

// ParseUserType converts string to UserType
func ParseUserType(v string) (UserType, error) {
	ev, err := parseEnum("user type", v, userTypeRaw)
	return UserType{ev}, err
}

// MarshalText implements encoding.TextMarshaler
func (e UserType) MarshalText() ([]byte, error) { return []byte(e.name), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (e *UserType) UnmarshalText(text []byte) error {
	v, err := ParseUserType(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Value implements driver.Valuer
func (e UserType) Value() (driver.Value, error) { return e.name, nil }

// Scan implements sql.Scanner
func (e *UserType) Scan(src any) error {
	ev, err := scanEnum("user type", src, userTypeRaw)
	if err != nil {
		return err
	}
	*e = UserType{ev}
	return nil
}
