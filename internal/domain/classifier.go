package domain

// TypeBucket é a classificação canônica do tipo de veículo
type TypeBucket string

const (
	BucketNewBMW       TypeBucket = "NewBMW"
	BucketCPOBMW       TypeBucket = "CPOBMW"
	BucketUsedBMW      TypeBucket = "UsedBMW"
	BucketNewMINI      TypeBucket = "NewMINI"
	BucketCPOMINI      TypeBucket = "CPOMINI"
	BucketUsedMINI     TypeBucket = "UsedMINI"
	BucketUnclassified TypeBucket = "Unclassified"
)

// Tipos de veículo reconhecidos no cadastro de vendas
const (
	VehicleTypeNewBMW   = "New BMW"
	VehicleTypeCPOBMW   = "CPO BMW"
	VehicleTypeUsedBMW  = "Used BMW"
	VehicleTypeNewMINI  = "New MINI"
	VehicleTypeCPOMINI  = "CPO MINI"
	VehicleTypeUsedMINI = "Used MINI"
)

// ClassifiedBuckets lista os seis buckets na ordem de exibição
var ClassifiedBuckets = []TypeBucket{
	BucketNewBMW,
	BucketCPOBMW,
	BucketUsedBMW,
	BucketNewMINI,
	BucketCPOMINI,
	BucketUsedMINI,
}

var bucketByVehicleType = map[string]TypeBucket{
	VehicleTypeNewBMW:   BucketNewBMW,
	VehicleTypeCPOBMW:   BucketCPOBMW,
	VehicleTypeUsedBMW:  BucketUsedBMW,
	VehicleTypeNewMINI:  BucketNewMINI,
	VehicleTypeCPOMINI:  BucketCPOMINI,
	VehicleTypeUsedMINI: BucketUsedMINI,
}

var vehicleTypeByBucket = map[TypeBucket]string{
	BucketNewBMW:   VehicleTypeNewBMW,
	BucketCPOBMW:   VehicleTypeCPOBMW,
	BucketUsedBMW:  VehicleTypeUsedBMW,
	BucketNewMINI:  VehicleTypeNewMINI,
	BucketCPOMINI:  VehicleTypeCPOMINI,
	BucketUsedMINI: VehicleTypeUsedMINI,
}

// BucketForType mapeia o tipo informado para o bucket; qualquer outro valor é Unclassified
func BucketForType(vehicleType string) TypeBucket {
	if bucket, ok := bucketByVehicleType[vehicleType]; ok {
		return bucket
	}
	return BucketUnclassified
}

// VehicleType retorna o tipo de veículo correspondente ao bucket ("" para Unclassified)
func (b TypeBucket) VehicleType() string {
	return vehicleTypeByBucket[b]
}

func (b TypeBucket) IsClassified() bool {
	_, ok := vehicleTypeByBucket[b]
	return ok
}

func (b TypeBucket) IsBMW() bool {
	return b == BucketNewBMW || b == BucketCPOBMW || b == BucketUsedBMW
}

func (b TypeBucket) IsMINI() bool {
	return b == BucketNewMINI || b == BucketCPOMINI || b == BucketUsedMINI
}

// IsUsed agrupa CPO e usados das duas marcas
func (b TypeBucket) IsUsed() bool {
	return b == BucketCPOBMW || b == BucketUsedBMW || b == BucketCPOMINI || b == BucketUsedMINI
}

// Classification é o resultado da classificação de uma venda
type Classification struct {
	Bucket    TypeBucket `json:"bucket"`
	Delivered bool       `json:"delivered"`
}

// Classify classifica a venda pelo tipo e pelo status de entrega normalizado
func Classify(sale Sale) Classification {
	return Classification{
		Bucket:    BucketForType(sale.Type),
		Delivered: IsDelivered(sale.Delivered),
	}
}

// Sale reconstrói uma venda mínima com a mesma classificação
func (c Classification) Sale() Sale {
	return Sale{
		Type:      c.Bucket.VehicleType(),
		Delivered: DeliveredFlag(c.Delivered),
	}
}
