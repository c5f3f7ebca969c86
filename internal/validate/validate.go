// Package validate contains the field validation rules for mutating
// requests. Each function returns a descriptive *apierrors.APIError on
// failure and nil when the input is acceptable.
package validate

import (
	"regexp"

	"github.com/codigofacilito/blog-backend/internal/apierrors"
	"github.com/codigofacilito/blog-backend/internal/model"
)

const (
	usernameLengthMin = 5
	usernameLengthMax = 10
	passwordLengthMin = 8
	passwordLengthMax = 20
	titleLengthMin    = 20
	titleLengthMax    = 150
	contentLengthMin  = 500
	contentLengthMax  = 10000
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Username checks the username length bounds.
func Username(username string) *apierrors.APIError {
	if len(username) < usernameLengthMin || len(username) > usernameLengthMax {
		return apierrors.NewErrValidation(
			"username is required and must be between %d and %d characters",
			usernameLengthMin, usernameLengthMax)
	}
	return nil
}

// Email checks the email syntax.
func Email(email string) *apierrors.APIError {
	if !emailRegexp.MatchString(email) {
		return apierrors.NewErrValidation("email format is not valid")
	}
	return nil
}

// Password checks the plaintext password length bounds.
func Password(password string) *apierrors.APIError {
	if len(password) < passwordLengthMin || len(password) > passwordLengthMax {
		return apierrors.NewErrValidation(
			"password must be between %d and %d characters",
			passwordLengthMin, passwordLengthMax)
	}
	return nil
}

// Roles checks that every role is one of the allowed role names.
func Roles(roles []string) *apierrors.APIError {
	for _, role := range roles {
		if role != model.RoleUser && role != model.RoleAdmin {
			return apierrors.NewErrValidation("role %q is not valid", role)
		}
	}
	return nil
}

// PostTitle checks the post title length bounds.
func PostTitle(title string) *apierrors.APIError {
	if len(title) < titleLengthMin || len(title) > titleLengthMax {
		return apierrors.NewErrValidation(
			"title is required and must be between %d and %d characters",
			titleLengthMin, titleLengthMax)
	}
	return nil
}

// PostContent checks the post content length bounds.
func PostContent(content string) *apierrors.APIError {
	if len(content) < contentLengthMin || len(content) > contentLengthMax {
		return apierrors.NewErrValidation(
			"content is required and must be between %d and %d characters",
			contentLengthMin, contentLengthMax)
	}
	return nil
}

// PostCategories checks that at least one category is given.
func PostCategories(categories []string) *apierrors.APIError {
	if len(categories) == 0 {
		return apierrors.NewErrValidation("at least one category is required")
	}
	for _, category := range categories {
		if category == "" {
			return apierrors.NewErrValidation("categories must not be empty strings")
		}
	}
	return nil
}

// Credentials checks that a login request carries both fields.
func Credentials(email, password string) *apierrors.APIError {
	if email == "" || password == "" {
		return apierrors.NewErrValidation("email and password are required")
	}
	return nil
}
