package enums

// CardStatus 卡券审核 / 投放状态，用于批量查询卡券列表时过滤
type CardStatus string

const (
	CardStatusNotVerify    CardStatus = "CARD_STATUS_NOT_VERIFY"    // 待审核
	CardStatusVerifyFail   CardStatus = "CARD_STATUS_VERIFY_FAIL"   // 审核失败
	CardStatusVerifyOK     CardStatus = "CARD_STATUS_VERIFY_OK"     // 通过审核
	CardStatusUserDelete   CardStatus = "CARD_STATUS_USER_DELETE"   // 卡券被商户删除
	CardStatusUserDispatch CardStatus = "CARD_STATUS_USER_DISPATCH" // 在公众平台投放过的卡券
)
