package domain

import "context"

// Table names are part of the storage contract shared with existing
// deployments of the registry database.
const (
	TableUsers       = "Usuaris"
	TableEquipment   = "Equips"
	TablePrinters    = "Impressores"
	TableResources   = "Recursos_Compartits"
	TableAssignments = "Usuari_recurs"
)

type User struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       *string `gorm:"column:nom;type:text" json:"nom"`
	DNI        *string `gorm:"column:dni;type:text;uniqueIndex" json:"dni"`
	Location   *string `gorm:"column:ubicacio;type:text" json:"ubicacio"`
	Department *string `gorm:"column:departament;type:text" json:"departament"`
	Groups     *string `gorm:"column:grups;type:text" json:"grups"`
	Notes      *string `gorm:"column:notes;type:text" json:"notes"`
	State      State   `gorm:"column:estat;type:text;default:'actiu'" json:"estat"`
}

func (User) TableName() string { return TableUsers }

type Equipment struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     *string `gorm:"column:nom_equip;type:text;uniqueIndex" json:"nom_equip"`
	IP       *string `gorm:"column:ip;type:text" json:"ip"`
	Model    *string `gorm:"column:model;type:text" json:"model"`
	Location *string `gorm:"column:ubicacio;type:text" json:"ubicacio"`
	Notes    *string `gorm:"column:notes;type:text" json:"notes"`
	OwnerID  *uint   `gorm:"column:usuari_id" json:"usuari_id"`
	State    State   `gorm:"column:estat;type:text;default:'actiu'" json:"estat"`

	// OwnerName is only filled by the active listing, which joins Usuaris.
	OwnerName *string `gorm:"column:nom_usuari;->;-:migration" json:"nom_usuari"`
	Owner     *User   `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
}

func (Equipment) TableName() string { return TableEquipment }

type Printer struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"column:nom_impressora;type:text;not null;uniqueIndex" json:"nom_impressora"`
	Model    *string `gorm:"column:model;type:text" json:"model"`
	Location *string `gorm:"column:ubicacio;type:text" json:"ubicacio"`
	IP       *string `gorm:"column:ip;type:text;uniqueIndex" json:"ip"`
	State    State   `gorm:"column:estat;type:text;default:'actiu'" json:"estat"`
}

func (Printer) TableName() string { return TablePrinters }

// SharedResource is a network share or folder. It has no lifecycle state:
// resources are created and listed, never archived.
type SharedResource struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        *string `gorm:"column:nom_recurs;type:text;uniqueIndex" json:"nom_recurs"`
	Path        *string `gorm:"column:ruta_xarxa;type:text;uniqueIndex" json:"ruta_xarxa"`
	Description *string `gorm:"column:descripcio;type:text" json:"descripcio"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"`
}

func (SharedResource) TableName() string { return TableResources }

// Assignment links a user to a shared resource with a permission label.
type Assignment struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint    `gorm:"column:usuari_id;uniqueIndex:idx_usuari_recurs" json:"usuari_id"`
	ResourceID uint    `gorm:"column:recurs_id;uniqueIndex:idx_usuari_recurs" json:"recurs_id"`
	Permission *string `gorm:"column:permis;type:text" json:"permis"`

	User     *User           `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Resource *SharedResource `gorm:"foreignKey:ResourceID;references:ID" json:"-"`
}

func (Assignment) TableName() string { return TableAssignments }

// AssignedResource is one row of the per-user resource listing.
type AssignedResource struct {
	AssignmentID uint    `gorm:"column:assignacio_id" json:"assignacio_id"`
	ResourceID   uint    `gorm:"column:recurs_id" json:"recurs_id"`
	ResourceName *string `gorm:"column:nom_recurs" json:"nom_recurs"`
	NetworkPath  *string `gorm:"column:ruta_xarxa" json:"ruta_xarxa"`
	Permission   *string `gorm:"column:permis" json:"permis"`
}

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{&User{}, &Equipment{}, &Printer{}, &SharedResource{}, &Assignment{}}
}

// LifecycleRepository is implemented for users, equipment and printers.
type LifecycleRepository[T any] interface {
	Create(ctx context.Context, m *T) error
	ListByState(ctx context.Context, st State) ([]T, error)
	// SetState returns the number of rows matched by id.
	SetState(ctx context.Context, id uint, st State) (int64, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *SharedResource) error
	List(ctx context.Context) ([]SharedResource, error)
}

type AssignmentRepository interface {
	Assign(ctx context.Context, a *Assignment) error
	Revoke(ctx context.Context, userID, resourceID uint) (int64, error)
	RevokeByID(ctx context.Context, id uint) (int64, error)
	ListForUser(ctx context.Context, userID uint) ([]AssignedResource, error)
}
