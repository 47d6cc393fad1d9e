package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EspDiag/internal/errcatalog"
	"EspDiag/modules/kit/errx"
)

func newService() *Service {
	return NewService(errcatalog.New(errcatalog.Builtin(), errcatalog.FeatureNVS, errcatalog.FeatureWiFi))
}

func TestResolve_按数值查询(t *testing.T) {
	s := newService()
	ctx := context.Background()

	for _, q := range []string{"258", "0x102", " 0X102 "} {
		got, err := s.Resolve(ctx, q)
		require.NoError(t, err, q)
		assert.Equal(t, "ESP_ERR_INVALID_ARG", got.Name, q)
		assert.Equal(t, int32(258), got.Code)
		assert.Equal(t, "0x102", got.Hex)
		assert.Equal(t, "core", got.Feature)
		assert.True(t, got.Known)
	}
}

func TestResolve_未注册数值返回兜底(t *testing.T) {
	got, err := newService().Resolve(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, got.Known)
	assert.Equal(t, errcatalog.Unknown(999), got.Name)
	assert.Equal(t, "0x3e7", got.Hex)
}

func TestResolve_未启用特性的数值按未注册处理(t *testing.T) {
	got, err := newService().Resolve(context.Background(), "0x8001")
	require.NoError(t, err)
	assert.False(t, got.Known)
}

func TestResolve_按符号名查询(t *testing.T) {
	s := newService()

	got, err := s.Resolve(context.Background(), "ESP_ERR_NVS_NOT_FOUND")
	require.NoError(t, err)
	assert.Equal(t, int32(0x1102), got.Code)
	assert.Equal(t, "nvs", got.Feature)
	assert.NotEmpty(t, got.Description)

	got, err = s.Resolve(context.Background(), "esp_err_wifi_not_init")
	require.NoError(t, err, "符号名大小写不敏感")
	assert.Equal(t, "0x3001", got.Hex)
}

func TestResolve_错误(t *testing.T) {
	s := newService()

	_, err := s.Resolve(context.Background(), "  ")
	assert.True(t, errors.Is(err, errx.ErrReqParam))

	_, err = s.Resolve(context.Background(), "ESP_ERR_NOPE")
	assert.True(t, errors.Is(err, errx.ErrNotFound))
	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "ESP_ERR_NOPE", e.Data()["query"])
}

func TestList(t *testing.T) {
	s := newService()

	all, err := s.List(context.Background(), "")
	require.NoError(t, err)
	nvs, err := s.List(context.Background(), "nvs")
	require.NoError(t, err)
	assert.Len(t, nvs, 25)
	assert.Greater(t, len(all), len(nvs))
	for _, r := range nvs {
		assert.Equal(t, "nvs", r.Feature)
	}

	_, err = s.List(context.Background(), "tls")
	assert.True(t, errors.Is(err, errx.ErrNotFound), "未启用的特性")
}

func TestFeatures(t *testing.T) {
	got := newService().Features(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, "core", got[0].Name)
	assert.Equal(t, FeatureInfo{Name: "nvs", Count: 25}, got[1])
	assert.Equal(t, "wifi", got[2].Name)
}
