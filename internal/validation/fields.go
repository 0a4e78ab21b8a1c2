package validation

import "fmt"

// Правила намеренно минимальные: username и пароль сравниваются точно,
// без нормализации регистра и без обрезки пробелов. Единственное
// требование - обязательные поля не должны быть пустыми.

// ValidateUsername проверяет, что username присутствует
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// ValidatePassword проверяет, что пароль присутствует
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateISBN проверяет, что ISBN присутствует
func ValidateISBN(isbn string) error {
	if isbn == "" {
		return fmt.Errorf("isbn is required")
	}
	return nil
}

// ValidateReview проверяет, что текст рецензии присутствует
func ValidateReview(review string) error {
	if review == "" {
		return fmt.Errorf("review text is required")
	}
	return nil
}
