package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"shopstream/internal/domain/model"
	"shopstream/internal/repository"
	"shopstream/internal/usecase/auth"
)

// セッションの状態
type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionHydrating
	SessionAnonymous
	SessionAuthenticated
)

// セッションの永続化キー（カートとは名前空間を分ける）
const (
	authTokenKey = "shopstream_auth_token"
	userInfoKey  = "shopstream_user_info"
)

// SessionUsecase は「誰がログインしているか」の唯一の置き場。
// 永続ストレージに裏打ちされた小さな状態機械として公開する。
type SessionUsecase struct {
	mu            sync.Mutex
	state         SessionState
	session       *model.Session
	loginInFlight bool

	users      repository.UserRepository
	blobs      repository.BlobStore
	verifier   auth.PasswordVerifier
	issuer     auth.TokenIssuer
	clock      auth.Clock
	validator  StorefrontValidator
	nav        Navigator
	log        *zap.Logger
	loginDelay time.Duration
}

// DI
func NewSessionUsecase(
	users repository.UserRepository,
	blobs repository.BlobStore,
	verifier auth.PasswordVerifier,
	issuer auth.TokenIssuer,
	clock auth.Clock,
	validator StorefrontValidator,
	nav Navigator,
	log *zap.Logger,
	loginDelay time.Duration,
) *SessionUsecase {
	return &SessionUsecase{
		state:      SessionUninitialized,
		users:      users,
		blobs:      blobs,
		verifier:   verifier,
		issuer:     issuer,
		clock:      clock,
		validator:  validator,
		nav:        nav,
		log:        log,
		loginDelay: loginDelay,
	}
}

// Hydrate は永続ストレージからセッションを1回だけ読み込む。
// 完了後に呼ばれても何もしない。読み込み失敗は未ログイン扱いに落とす
// （耐久性はベストエフォート、認証の正しさは落とさない）。
func (u *SessionUsecase) Hydrate(ctx context.Context) error {
	u.mu.Lock()
	if u.state != SessionUninitialized {
		u.mu.Unlock()
		return nil
	}
	u.state = SessionHydrating
	u.mu.Unlock()

	var session *model.Session

	token, tokenErr := u.blobs.Get(ctx, authTokenKey)
	info, infoErr := u.blobs.Get(ctx, userInfoKey)

	switch {
	case tokenErr == nil && infoErr == nil:
		var user model.User
		if err := json.Unmarshal([]byte(info), &user); err != nil {
			u.log.Warn("broken user info blob, treating as anonymous", zap.Error(err))
		} else if token != "" {
			session = &model.Session{Token: token, User: user}
		}
	default:
		// token と identity が揃っていなければ未ログイン
		if tokenErr != nil && !errors.Is(tokenErr, repository.ErrNotFound) {
			u.log.Warn("failed to load auth token", zap.Error(tokenErr))
		}
		if infoErr != nil && !errors.Is(infoErr, repository.ErrNotFound) {
			u.log.Warn("failed to load user info", zap.Error(infoErr))
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if session != nil {
		u.session = session
		u.state = SessionAuthenticated
	} else {
		u.session = nil
		u.state = SessionAnonymous
	}
	return nil
}

// Login は認証ディレクトリと照合し、成功ならセッションを確立して永続化する。
// 照合失敗は ErrInvalidCredentials（致命ではなく、文言は呼び出し側が決める）。
// 進行中の二重送信は ErrLoginInFlight、hydrate前は ErrNotHydrated。
func (u *SessionUsecase) Login(ctx context.Context, email string, password string) error {
	if err := u.validator.ValidateLogin(ctx, email, password); err != nil {
		return err
	}

	u.mu.Lock()
	if u.state == SessionUninitialized || u.state == SessionHydrating {
		u.mu.Unlock()
		return ErrNotHydrated
	}
	if u.loginInFlight {
		u.mu.Unlock()
		return ErrLoginInFlight
	}
	u.loginInFlight = true
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.loginInFlight = false
		u.mu.Unlock()
	}()

	// 本物のAPI相当の待ち時間（設定で0にできる）
	if u.loginDelay > 0 {
		select {
		case <-time.After(u.loginDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	account, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !u.verifier.Verify(password, account.PasswordHash) {
		return ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(account.User, u.clock.Now())
	if err != nil {
		return err
	}

	// 永続化するのはパスワードを含まない本人情報だけ
	info, err := json.Marshal(account.User)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.session = &model.Session{Token: token, User: account.User}
	u.state = SessionAuthenticated
	u.mu.Unlock()

	// 永続化失敗はログだけ残して成功扱い（メモリ上の状態が正）
	if err := u.blobs.Set(ctx, authTokenKey, token); err != nil {
		u.log.Warn("failed to persist auth token", zap.Error(err))
	}
	if err := u.blobs.Set(ctx, userInfoKey, string(info)); err != nil {
		u.log.Warn("failed to persist user info", zap.Error(err))
	}

	return nil
}

// Logout はメモリと永続化の両方をひとまとめに消してログイン画面へ誘導する。
// token だけ・identity だけが残った状態を読者が観測しないよう、ロック中に両方消す。
func (u *SessionUsecase) Logout(ctx context.Context) error {
	u.mu.Lock()
	if u.state == SessionUninitialized || u.state == SessionHydrating {
		u.mu.Unlock()
		return ErrNotHydrated
	}

	u.session = nil
	u.state = SessionAnonymous

	if err := u.blobs.Delete(ctx, authTokenKey); err != nil {
		u.log.Warn("failed to remove auth token", zap.Error(err))
	}
	if err := u.blobs.Delete(ctx, userInfoKey); err != nil {
		u.log.Warn("failed to remove user info", zap.Error(err))
	}
	u.mu.Unlock()

	u.nav.NavigateTo("/login")
	return nil
}

// IsLoading が true の間は IsAuthenticated を当てにしてはいけない
// （hydrate中、またはログイン進行中）。
func (u *SessionUsecase) IsLoading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state == SessionUninitialized || u.state == SessionHydrating || u.loginInFlight
}

func (u *SessionUsecase) IsAuthenticated() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state == SessionAuthenticated
}

func (u *SessionUsecase) State() SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// CurrentUser はログイン中の本人情報のコピーを返す。未ログインなら nil。
func (u *SessionUsecase) CurrentUser() *model.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return nil
	}
	user := u.session.User
	return &user
}

// Token はクレデンシャル文字列を返す。未ログインなら空。
func (u *SessionUsecase) Token() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return ""
	}
	return u.session.Token
}
