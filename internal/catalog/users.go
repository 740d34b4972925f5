package catalog

// 認証ディレクトリのシード。パスワードはディレクトリ構築時にハッシュ化され、
// 平文のままメモリに残り続けることはない。
type SeedUser struct {
	ID       string
	Email    string
	Name     string
	Password string
}

// Users はデモ用の認証ディレクトリを返す。
func Users() []SeedUser {
	return []SeedUser{
		{
			ID:       "1",
			Email:    "user@example.com",
			Name:     "Test User",
			Password: "password123",
		},
	}
}
