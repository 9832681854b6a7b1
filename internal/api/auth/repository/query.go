package authRepository

const (
	queryCreateAdmin = `
INSERT INTO admin_users (id, username, password, created_at)
VALUES (:id, :username, :password, :created_at)`

	queryGetAdminByUsername = `
SELECT id, username, password, created_at
FROM admin_users
    WHERE username = :username`

	queryUpdateAdminPassword = `
UPDATE admin_users
SET password = :password
WHERE id = :id`
)
