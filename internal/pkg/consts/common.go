package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	// MaxPermanentShorts 每家餐厅永久短视频上限
	MaxPermanentShorts = 15

	// MaxPublishDelayHours publish_at 允许的最大提前量
	MaxPublishDelayHours = 48
)

const (
	// MaxFeedPageSize 信息流单页硬上限
	MaxFeedPageSize = 50

	// DefaultFeedPageSize 信息流默认页大小
	DefaultFeedPageSize = 10

	// FeedScanBatchSize 信息流候选扫描批大小（过滤后不足一页时继续扫）
	FeedScanBatchSize = 30

	// DefaultCommentPageSize 评论列表默认页大小
	DefaultCommentPageSize = 20
)

const (
	// MetricSyncScanLimit Redis 不可用时指标任务全量扫描的上限
	MetricSyncScanLimit = 1000
)
