package helper

import "gorm.io/gorm"

// XactLock mengambil pg_advisory_xact_lock untuk key; lepas otomatis saat transaksi selesai.
// Dipakai untuk operasi "hapus lalu insert" yang FOR UPDATE-nya tidak mengunci apa pun saat baris belum ada.
func XactLock(tx *gorm.DB, key string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}
