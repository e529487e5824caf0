package entity

// Snapshot is a stored copy of the processos JSON document, used when the
// dataset is shipped inside a sqlite file instead of a plain JSON file.
type Snapshot struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Content   []byte `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
}
