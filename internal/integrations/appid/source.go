// Package appid provides sources for the Wolfram Alpha app id. The menu
// binary prefers a value handed over from the environment and falls back to
// AWS SSM Parameter Store when configured that way.
package appid

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmAPI is the minimal AWS SSM interface required by ParameterStore.
// *ssm.Client from aws-sdk-go-v2 satisfies this interface.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Static is a fixed app id, typically read from WOLFRAM_APP_ID at startup.
type Static string

func (s Static) AppID(context.Context) (string, error) {
	id := strings.TrimSpace(string(s))
	if id == "" {
		return "", errors.New("appid: static app id is empty")
	}
	return id, nil
}

// ParameterStore fetches the app id from AWS SSM Parameter Store, with
// decryption so SecureString parameters work.
type ParameterStore struct {
	api  ssmAPI
	name string
}

func NewParameterStore(api ssmAPI, name string) (*ParameterStore, error) {
	if api == nil {
		return nil, errors.New("appid: ssm api must not be nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("appid: parameter name must not be empty")
	}
	return &ParameterStore{api: api, name: name}, nil
}

func (p *ParameterStore) AppID(ctx context.Context) (string, error) {
	withDecryption := true
	out, err := p.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &p.name,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("appid: get parameter %q: %w", p.name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.New("appid: parameter missing value")
	}
	id := strings.TrimSpace(*out.Parameter.Value)
	if id == "" {
		return "", errors.New("appid: parameter value is empty")
	}
	return id, nil
}
