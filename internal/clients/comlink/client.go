// Package comlink is the client for a swgoh-comlink proxy instance, the
// upstream source for raw game-definition data and localization bundles.
package comlink

//go:generate mockgen -destination=mock/mock_client.go -package=comlinkmock github.com/swgoh-tools/statcalc/internal/clients/comlink Client

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/swgoh-tools/statcalc/internal/errors"
	"github.com/swgoh-tools/statcalc/internal/pkg/clock"
	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// Client defines the interface for comlink interactions
type Client interface {
	// GetLatestVersion fetches the current game and localization bundle versions
	GetLatestVersion(ctx context.Context) (*swgoh.DataVersion, error)

	// GetGameData fetches the raw game-definition collections for a version
	GetGameData(ctx context.Context, version string, includePveUnits bool) (*GameData, error)

	// GetLocalizationBundle fetches and unpacks the localization bundle for
	// the given bundle version, keyed by lowercase language code
	GetLocalizationBundle(ctx context.Context, version string) (map[string][]byte, error)
}

type client struct {
	baseURL    string
	accessKey  string
	secretKey  string
	httpClient *http.Client
	clock      clock.Clock
	log        *slog.Logger
}

// Config contains configuration options for the comlink client.
type Config struct {
	// BaseURL of the comlink instance (optional, defaults to http://localhost:3000)
	BaseURL string
	// AccessKey and SecretKey enable HMAC request signing when both are set
	AccessKey string
	SecretKey string
	// HTTPTimeout for API requests (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// Clock supplies signing timestamps (optional, defaults to system time)
	Clock clock.Clock
	// Logger for request logging (optional, defaults to slog.Default)
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return errors.InvalidArgument("access key and secret key must be set together")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// New creates a new comlink client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accessKey:  cfg.AccessKey,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		clock:      cfg.Clock,
		log:        cfg.Logger,
	}, nil
}

// Request payload shapes. Field order matters: the signed request body must
// serialize identically to what the server hashes, so these mirror the wire
// format key for key.

type gameDataRequest struct {
	Payload struct {
		Version         string `json:"version"`
		IncludePveUnits bool   `json:"includePveUnits"`
		RequestSegment  int    `json:"requestSegment"`
	} `json:"payload"`
	Enums bool `json:"enums"`
}

type localizationRequest struct {
	Unzip   bool `json:"unzip"`
	Enums   bool `json:"enums"`
	Payload struct {
		ID string `json:"id"`
	} `json:"payload"`
}

type metadataResponse struct {
	LatestGamedataVersion           string `json:"latestGamedataVersion"`
	LatestLocalizationBundleVersion string `json:"latestLocalizationBundleVersion"`
}

type localizationResponse struct {
	LocalizationBundle string `json:"localizationBundle"`
}

func (c *client) GetLatestVersion(ctx context.Context) (*swgoh.DataVersion, error) {
	var meta metadataResponse
	if err := c.post(ctx, "metadata", struct{}{}, &meta); err != nil {
		return nil, err
	}
	if meta.LatestGamedataVersion == "" || meta.LatestLocalizationBundleVersion == "" {
		return nil, errors.Internal("metadata response missing version fields")
	}
	return &swgoh.DataVersion{
		Game:         meta.LatestGamedataVersion,
		Localization: meta.LatestLocalizationBundleVersion,
	}, nil
}

func (c *client) GetGameData(ctx context.Context, version string, includePveUnits bool) (*GameData, error) {
	if version == "" {
		return nil, errors.InvalidArgument("game data version is required")
	}

	req := gameDataRequest{}
	req.Payload.Version = version
	req.Payload.IncludePveUnits = includePveUnits

	started := c.clock.Now()
	var data GameData
	if err := c.post(ctx, "data", req, &data); err != nil {
		return nil, err
	}
	c.log.Debug("game data retrieved",
		"version", version,
		"duration", c.clock.Now().Sub(started).String())
	return &data, nil
}

func (c *client) GetLocalizationBundle(ctx context.Context, version string) (map[string][]byte, error) {
	if version == "" {
		return nil, errors.InvalidArgument("localization bundle version is required")
	}

	req := localizationRequest{}
	req.Payload.ID = version

	var resp localizationResponse
	if err := c.post(ctx, "localization", req, &resp); err != nil {
		return nil, err
	}
	if resp.LocalizationBundle == "" {
		return nil, errors.Internal("localization response missing bundle")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.LocalizationBundle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode localization bundle")
	}
	return unpackBundle(raw)
}

// unpackBundle extracts the per-language files from the zipped bundle. File
// names follow the Loc_<LANG>.txt convention; the map is keyed by lowercase
// language code.
func unpackBundle(raw []byte) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open localization bundle archive")
	}

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		lang := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(f.Name, "Loc_"), ".txt"))
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bundle entry %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read bundle entry %s", f.Name)
		}
		files[lang] = content
	}
	return files, nil
}

func (c *client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s payload", endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	c.sign(req, endpoint, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "comlink %s request failed", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("comlink %s returned status %d", endpoint, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", endpoint)
	}
	return nil
}

// sign adds the HMAC headers when credentials are configured. The signature
// covers the request timestamp, method, endpoint path and an MD5 digest of
// the exact payload bytes sent.
func (c *client) sign(req *http.Request, endpoint string, body []byte) {
	if c.accessKey == "" || c.secretKey == "" {
		return
	}

	reqTime := strconv.FormatInt(c.clock.Now().UnixMilli(), 10)
	payloadHash := md5.Sum(body)
	payloadDigest := hex.EncodeToString(payloadHash[:])

	mac := hmac.New(sha256.New, []byte(c.secretKey))
	for _, part := range []string{reqTime, http.MethodPost, "/" + endpoint, payloadDigest} {
		mac.Write([]byte(part))
	}

	req.Header.Set("X-Date", reqTime)
	req.Header.Set("Authorization",
		fmt.Sprintf("HMAC-SHA256 Credential=%s,Signature=%s", c.accessKey, hex.EncodeToString(mac.Sum(nil))))
}
