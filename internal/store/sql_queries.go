package store

const userColumns = `id, email, password, name, email_verified, otp, otp_expires_at, reset_token, reset_expires_at, refresh_token, created_at, updated_at`

const (
	createUser = `INSERT INTO users (email, password, name, email_verified, otp, otp_expires_at)
    VALUES ($1, $2, $3, FALSE, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	setUserOTP = `UPDATE users
    SET otp = $2, otp_expires_at = $3, updated_at = NOW()
    WHERE id = $1;`

	markUserEmailVerified = `UPDATE users
    SET email_verified = TRUE, otp = NULL, otp_expires_at = NULL, updated_at = NOW()
    WHERE id = $1;`

	setUserResetToken = `UPDATE users
    SET reset_token = $2, reset_expires_at = $3, updated_at = NOW()
    WHERE id = $1;`

	updateUserPassword = `UPDATE users
    SET password = $2, reset_token = NULL, reset_expires_at = NULL, updated_at = NOW()
    WHERE id = $1;`

	setUserRefreshToken = `UPDATE users
    SET refresh_token = $2, updated_at = NOW()
    WHERE id = $1;`

	clearUserRefreshToken = `UPDATE users
    SET refresh_token = NULL, updated_at = NOW()
    WHERE id = $1;`
)
