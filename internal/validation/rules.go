package validation

// UserInput is the state of a user about to be written.
type UserInput struct {
	Username string
	Email    string
	Password string
	// PasswordSet is true when Password holds plaintext supplied in this
	// request. A stored hash is never length-checked.
	PasswordSet bool
}

// StoreInput is the state of a store about to be written.
type StoreInput struct {
	Name string
}

var UserRules = Rules[UserInput]{
	{
		Name:  "username",
		Value: func(u UserInput) string { return u.Username },
		Checks: []Check{
			{Tag: "min=3,max=30", Message: "username must be between 3 to 30 characters long"},
		},
	},
	{
		Name:  "email",
		Value: func(u UserInput) string { return u.Email },
		Checks: []Check{
			{Tag: "email", Message: "email must be an email"},
		},
	},
	{
		Name:  "password",
		Value: func(u UserInput) string { return u.Password },
		When:  func(u UserInput) bool { return u.PasswordSet },
		Checks: []Check{
			{Tag: "min=6,max=16", Message: "password must be between 6 to 16 characters long"},
		},
	},
}

var StoreRules = Rules[StoreInput]{
	{
		Name:  "name",
		Value: func(s StoreInput) string { return s.Name },
		Checks: []Check{
			{Tag: "min=10", Message: "store name must be at least 10 character long"},
		},
	},
}

// ValidateUser applies UserRules.
func ValidateUser(u UserInput) Errors {
	return UserRules.Validate(u)
}

// ValidateStore applies StoreRules.
func ValidateStore(s StoreInput) Errors {
	return StoreRules.Validate(s)
}
