package consts

const (
	ShortLikeKey    = "short:like:"
	ShortCommentKey = "short:comment:"
	ShortViewKey    = "short:view:"
	ShortDirtyKey   = "short:dirty"
)

const (
	ShortQuotaLock = "short:quota:lock:"
)
