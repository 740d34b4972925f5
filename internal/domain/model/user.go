package model

// 本人情報（永続化される形。パスワードは含めない）
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// 認証ディレクトリの1件。ハッシュはディレクトリの外に出さない。
type Account struct {
	User
	PasswordHash string `json:"-"`
}
