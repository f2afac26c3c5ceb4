// Copyright (c) 2025, The cmskit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/cmskit/contenttypes/pkg/header"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri       string
		namespace string
		name      string
		wantErr   bool
	}{
		{"cm://cms/content-types", "cms", "content-types", false},
		{"cm:// cms / types ", "cms", "types", false},
		{"cm://cms/nested/name", "cms", "nested/name", false},
		{"cm://cms", "", "", true},
		{"cm:///name", "", "", true},
		{"cm://cms/", "", "", true},
		{"file://cms/name", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, name, err := parseConfigMapURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if ns != tt.namespace || name != tt.name {
				t.Errorf("got %s/%s, want %s/%s", ns, name, tt.namespace, tt.name)
			}
		})
	}
}

func TestConfigMapWriter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	k := fake.NewClientset()

	doc := testDoc{Name: "book", Labels: map[string]string{"menu_name": "Library"}}
	doc.Init(header.KindRegistrationSet, header.APIVersionV1, "v1.2.3")

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			w := NewConfigMapWriter("cms", "types", format, WithKubeClient(k))
			if err := w.Serialize(ctx, &doc); err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			cm, err := k.CoreV1().ConfigMaps("cms").Get(ctx, "types", metav1.GetOptions{})
			if err != nil {
				t.Fatal(err)
			}
			if cm.Data["format"] != string(format) {
				t.Errorf("format = %q", cm.Data["format"])
			}
			if cm.Labels["app.kubernetes.io/component"] != "registrationset" {
				t.Errorf("labels = %v", cm.Labels)
			}
			if cm.Labels["app.kubernetes.io/version"] != "v1.2.3" {
				t.Errorf("labels = %v", cm.Labels)
			}

			got, err := FromConfigMap[testDoc](ctx, k, "cms", "types")
			if err != nil {
				t.Fatalf("FromConfigMap() error = %v", err)
			}
			if got.Name != "book" || got.Labels["menu_name"] != "Library" {
				t.Errorf("unexpected document: %+v", got)
			}
		})
	}
}

func TestFromConfigMap_Errors(t *testing.T) {
	ctx := context.Background()
	k := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "cms", Name: "nokey"},
			Data:       map[string]string{"other": "x"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "cms", Name: "table"},
			Data:       map[string]string{"format": "table", "content.txt": "x"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "cms", Name: "bad"},
			Data:       map[string]string{"content.yaml": "name: [unterminated"},
		},
	)

	for _, name := range []string{"missing", "nokey", "table", "bad"} {
		t.Run(name, func(t *testing.T) {
			if _, err := FromConfigMap[testDoc](ctx, k, "cms", name); err == nil {
				t.Error("expected error")
			}
		})
	}
}
