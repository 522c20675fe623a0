package kube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"price-prediction-service/internal/config"
	"price-prediction-service/internal/core/domain"
	ports "price-prediction-service/internal/core/ports/output"
)

var configMapGVR = schema.GroupVersionResource{
	Group:    "",
	Version:  "v1",
	Resource: "configmaps",
}

type configMapSource struct {
	client    dynamic.Interface
	namespace string
	name      string
	key       string
}

// NewDynamicClient builds a dynamic client from in-cluster config, an explicit
// kubeconfig, or ~/.kube/config, in that order.
func NewDynamicClient(cfg *config.KubernetesConfig) (dynamic.Interface, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}
	return client, nil
}

// NewArtifactSource reads the bundle from data["<artifactName>.json"] of a ConfigMap.
func NewArtifactSource(client dynamic.Interface, namespace, configMap, artifactName string) ports.ArtifactSource {
	if namespace == "" {
		namespace = "model-serving"
	}
	return &configMapSource{
		client:    client,
		namespace: namespace,
		name:      configMap,
		key:       DataKey(artifactName),
	}
}

func DataKey(artifactName string) string {
	return artifactName + ".json"
}

func (s *configMapSource) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.Resource(configMapGVR).Namespace(s.namespace).Get(ctx, s.name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: configmap %s/%s", domain.ErrArtifactNotFound, s.namespace, s.name)
		}
		return nil, fmt.Errorf("get configmap %s/%s: %w", s.namespace, s.name, err)
	}

	data, found, err := unstructured.NestedString(obj.Object, "data", s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: configmap %s/%s key %s: %v", domain.ErrCorruptArtifact, s.namespace, s.name, s.key, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: configmap %s/%s has no key %s", domain.ErrArtifactNotFound, s.namespace, s.name, s.key)
	}
	return []byte(data), nil
}

func (s *configMapSource) Describe() string {
	return fmt.Sprintf("configmap:%s/%s[%s]", s.namespace, s.name, s.key)
}
