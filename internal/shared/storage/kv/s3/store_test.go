package s3

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "guest:1/selectedIngredients", want: "guest:1/selectedIngredients"},
		{name: "simple prefix", prefix: "chef", key: "selectedIngredients", want: "chef/selectedIngredients"},
		{name: "prefix trailing slash", prefix: "chef/", key: "selectedIngredients", want: "chef/selectedIngredients"},
		{name: "prefix and key slashes", prefix: "/chef/", key: "/selectedIngredients", want: "chef/selectedIngredients"},
		{name: "nested prefix", prefix: "chef/state", key: "favoriteRecipes", want: "chef/state/favoriteRecipes"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeClient struct {
	objects map[string][]byte
}

func (f *fakeClient) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestStoreRoundTripWithPrefix(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{objects: map[string][]byte{}}
	store := NewWithClient(client, "bucket", "/chef/")

	if _, ok, err := store.Get(ctx, "selectedIngredients"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "selectedIngredients", `["sale"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := client.objects["chef/selectedIngredients"]; !ok {
		t.Fatalf("expected prefixed object key, got %v", client.objects)
	}
	got, ok, err := store.Get(ctx, "selectedIngredients")
	if err != nil || !ok || got != `["sale"]` {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}
}
