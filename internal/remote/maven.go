// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/goplus/liftoff/mod/module"
)

// mavenIndex implements Index by reading maven-metadata.xml from a Maven
// repository layout.
type mavenIndex struct {
	endpoint   string
	httpClient *http.Client
}

type mavenMetadata struct {
	Versioning struct {
		Latest   string   `xml:"latest"`
		Release  string   `xml:"release"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

func (m *mavenIndex) metadataURL(c module.Coordinate) string {
	group := strings.ReplaceAll(c.Group, ".", "/")
	return fmt.Sprintf("%s/%s/%s/maven-metadata.xml", m.endpoint, group, c.Artifact)
}

// Latest prefers <release>, then <latest>, then the last listed version.
func (m *mavenIndex) Latest(ctx context.Context, c module.Coordinate) (string, error) {
	body, err := get(ctx, m.httpClient, m.metadataURL(c))
	if err != nil {
		return "", err
	}
	return parseMavenMetadata(body)
}

func parseMavenMetadata(body []byte) (string, error) {
	var md mavenMetadata
	if err := xml.Unmarshal(body, &md); err != nil {
		return "", fmt.Errorf("parse maven-metadata.xml: %w", err)
	}

	v := md.Versioning
	switch {
	case strings.TrimSpace(v.Release) != "":
		return strings.TrimSpace(v.Release), nil
	case strings.TrimSpace(v.Latest) != "":
		return strings.TrimSpace(v.Latest), nil
	case len(v.Versions) > 0 && strings.TrimSpace(v.Versions[len(v.Versions)-1]) != "":
		return strings.TrimSpace(v.Versions[len(v.Versions)-1]), nil
	}
	return "", fmt.Errorf("no version found in maven-metadata.xml")
}
