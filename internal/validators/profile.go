package validators

// Field limits carried over from the profile form.

func ValidFullName(name string) bool {
	return name != "" && len(name) <= 50
}

func ValidAge(age int) bool {
	return age > 0 && age <= 120
}

func ValidPhone(phone string) bool {
	return len(phone) >= 10 && len(phone) <= 14
}
