package service

import (
	"strings"
	"sync"
	"time"

	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// Captcha scene names
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// CaptchaVerifyPayload captcha verification payload
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge generated image challenge
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService image captcha challenges and verification, gated per
// scene by configuration.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu                  sync.Mutex
	imageStore          base64Captcha.Store
	imageStoreMaxStore  int
	imageStoreExpireSec int
}

// NewCaptchaService creates the captcha service
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// IsSceneEnabled reports whether a scene demands a captcha
func (s *CaptchaService) IsSceneEnabled(scene string) bool {
	if s == nil || s.cfg.Provider != constants.CaptchaProviderImage {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	case CaptchaSceneRegister:
		return s.cfg.Scenes.Register
	default:
		return false
	}
}

// GenerateImageChallenge generates an image challenge
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || s.cfg.Provider != constants.CaptchaProviderImage {
		return nil, ErrCaptchaConfigInvalid
	}

	image := s.normalizedImageConfig()
	store := s.ensureImageStore(image)
	driver := base64Captcha.NewDriverString(
		image.Height,
		image.Width,
		image.NoiseCount,
		image.ShowLine,
		image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, store)
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks the payload for a scene. Scenes without a captcha
// requirement pass unconditionally.
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.IsSceneEnabled(scene) {
		return nil
	}

	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	store := s.ensureImageStore(s.normalizedImageConfig())
	if !store.Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) normalizedImageConfig() config.CaptchaImageConfig {
	image := s.cfg.Image
	if image.Length <= 0 || image.Length > 10 {
		image.Length = 4
	}
	if image.Width <= 0 {
		image.Width = 160
	}
	if image.Height <= 0 {
		image.Height = 60
	}
	if image.NoiseCount < 0 {
		image.NoiseCount = 0
	}
	if image.ExpireSeconds <= 0 {
		image.ExpireSeconds = 300
	}
	if image.MaxStore <= 0 {
		image.MaxStore = 10240
	}
	return image
}

func (s *CaptchaService) ensureImageStore(image config.CaptchaImageConfig) base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore != nil && s.imageStoreMaxStore == image.MaxStore && s.imageStoreExpireSec == image.ExpireSeconds {
		return s.imageStore
	}
	s.imageStore = base64Captcha.NewMemoryStore(image.MaxStore, time.Duration(image.ExpireSeconds)*time.Second)
	s.imageStoreMaxStore = image.MaxStore
	s.imageStoreExpireSec = image.ExpireSeconds
	return s.imageStore
}
