// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// infaq client.
//
// All Msg* constants are human-readable Indonesian messages shown to the
// user on the status line of the terminal UI. Keeping them in one place
// ensures consistent wording throughout the client.
package app

const (
	// MsgCredentialsRequired is shown when the login form is submitted with
	// an empty email or password.
	MsgCredentialsRequired = "Email dan password wajib diisi"

	// MsgInvalidCredentials is shown when the backend rejects the
	// email/password combination.
	MsgInvalidCredentials = "Email atau password salah"

	// MsgNoProfile is shown when sign-in succeeded but the account has no
	// profile row.
	MsgNoProfile = "akun belum memiliki profil, hubungi admin"

	// MsgSessionExpired is shown when the session ended or was never there.
	MsgSessionExpired = "Sesi berakhir, silakan masuk kembali"

	// MsgForbidden is shown when the role of the user does not allow the
	// operation.
	MsgForbidden = "Peran Anda tidak diizinkan melakukan ini"

	// MsgLogoutIncomplete prefixes the error of a sign-out the backend did
	// not confirm. The local session is cleared regardless.
	MsgLogoutIncomplete = "Keluar dari perangkat ini, tetapi server gagal dihubungi"

	// MsgNetworkUnavailable is shown when the backend cannot be reached.
	MsgNetworkUnavailable = "Tidak ada jaringan atau server tidak dapat dihubungi"

	// MsgCannotCreate, MsgCannotEdit and MsgCannotDelete are shown when a
	// read-only role presses the matching key.
	MsgCannotCreate = "Peran Anda tidak dapat menambah transaksi"
	MsgCannotEdit   = "Peran Anda tidak dapat mengubah transaksi"
	MsgCannotDelete = "Peran Anda tidak dapat menghapus transaksi"
)
