package upload

import (
	"bytes"
	"context"
	"strings"

	"fieldreport/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossStore struct {
	bucket        *oss.Bucket
	folder        string
	publicBaseURL string
}

func newOSSStore(cfg config.UploadConfig) (*ossStore, error) {
	endpoint := cfg.OSSEndpoint
	if endpoint == "" {
		endpoint = "dummy"
	}
	cli, err := oss.New(endpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := cli.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &ossStore{
		bucket:        bucket,
		folder:        cfg.Folder,
		publicBaseURL: strings.TrimSuffix(cfg.OSSPublicBaseURL, "/"),
	}, nil
}

func (s *ossStore) put(ctx context.Context, fileName string, content []byte) (string, error) {
	key := fileName
	if s.folder != "" {
		key = s.folder + "/" + fileName
	}
	err := s.bucket.PutObject(key, bytes.NewReader(content), oss.ContentType(contentTypeFor(fileName)))
	if err != nil {
		return "", err
	}
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return key, nil
}
