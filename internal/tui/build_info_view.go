// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-infaq/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplikasi: Infaq\n")
	b.WriteString("Versi:    ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nTanggal:  ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit:   ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("TENTANG APLIKASI", b.String(), "esc / v: kembali")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
