package model

// 認証済みセッション
// token と user は必ず一緒に設定・消去される（片方だけの状態は作らない）。
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
